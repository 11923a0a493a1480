package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodeJamboree/action-builder/internal/domain"
)

func TestValidationError_Is(t *testing.T) {
	t.Parallel()

	err := domain.NewValidationError("name", domain.MsgRequired)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, domain.MsgRequired, verr.Fields["name"])
}

func TestValidationError_MessageIsSorted(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"kind": "invalid",
		"name": domain.MsgRequired,
	}}

	assert.Equal(t, "validation error: kind: invalid; name: is required", err.Error())
}
