package catalogapi

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeJamboree/action-builder/internal/domain"
)

func response(status int, contentType, body string) *http.Response {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode: status,
		Header:     h,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestTranslateHTTPError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{status: http.StatusBadRequest, wantErr: domain.ErrValidation},
		{status: http.StatusUnprocessableEntity, wantErr: domain.ErrValidation},
		{status: http.StatusConflict, wantErr: domain.ErrConflict},
		{status: http.StatusUnauthorized, wantErr: domain.ErrForbidden},
		{status: http.StatusForbidden, wantErr: domain.ErrForbidden},
		{status: http.StatusTooManyRequests, wantErr: domain.ErrUnavailable},
		{status: http.StatusInternalServerError, wantErr: domain.ErrUnavailable},
		{status: http.StatusServiceUnavailable, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()
			err := TranslateHTTPError(response(tt.status, "", ""))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), http.StatusText(tt.status))
		})
	}
}

func TestTranslateHTTPError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	err := TranslateHTTPError(response(http.StatusTeapot, "", ""))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 418")
	for _, sentinel := range []error{domain.ErrNotFound, domain.ErrValidation, domain.ErrUnavailable} {
		assert.False(t, errors.Is(err, sentinel))
	}
}

func TestTranslateHTTPError_ProblemDetail(t *testing.T) {
	t.Parallel()

	err := TranslateHTTPError(response(http.StatusNotFound, "application/problem+json",
		`{"type":"about:blank","title":"Not Found","status":404,"detail":"catalog todo-v2 does not exist"}`))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "catalog todo-v2 does not exist")
}

func TestTranslateHTTPError_FieldErrors(t *testing.T) {
	t.Parallel()

	err := TranslateHTTPError(response(http.StatusUnprocessableEntity, "application/problem+json; charset=utf-8",
		`{"detail":"invalid","errors":[{"location":"body.namespace","message":"is required"}]}`))

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"namespace": "is required"}, verr.Fields)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTranslateHTTPError_IgnoresNonProblemBody(t *testing.T) {
	t.Parallel()

	err := TranslateHTTPError(response(http.StatusBadGateway, "text/html", "<h1>bad gateway</h1>"))

	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.NotContains(t, err.Error(), "<h1>")
}
