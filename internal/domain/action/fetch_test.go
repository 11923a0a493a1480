package action_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeJamboree/action-builder/internal/domain/action"
)

type (
	triggerPayload struct{ Trigger string }
	requestPayload struct{ Request string }
	successPayload struct{ Success string }
	failurePayload struct{ Failure string }
	fulfillPayload struct{ Fulfill string }
)

func TestFetch_DefaultTypes(t *testing.T) {
	t.Parallel()

	update := action.New("test", "🧪").Fetch("UPDATE")

	tests := []struct {
		stage   string
		alias   string
		creator string
		action  string
	}{
		{"TRIGGER", update.TriggerType, update.Trigger.Type(), update.Trigger.Empty().Type},
		{"REQUEST", update.RequestType, update.Request.Type(), update.Request.Empty().Type},
		{"SUCCESS", update.SuccessType, update.Success.Type(), update.Success.Empty().Type},
		{"FAILURE", update.FailureType, update.Failure.Type(), update.Failure.Empty().Type},
		{"FULFILL", update.FulfillType, update.Fulfill.Type(), update.Fulfill.Empty().Type},
	}

	for _, tt := range tests {
		want := "test 🧪 UPDATE/" + tt.stage
		assert.Equal(t, want, tt.alias, tt.stage)
		assert.Equal(t, want, tt.creator, tt.stage)
		assert.Equal(t, want, tt.action, tt.stage)
	}
}

func TestFetch_TypesArePairwiseDistinct(t *testing.T) {
	t.Parallel()

	b := action.New("ns")
	update := b.Fetch("UPDATE", "ITEM")
	types := update.Types()

	require.Len(t, types, len(action.FetchStages))
	seen := make(map[string]bool, len(types))
	for i, typ := range types {
		assert.False(t, seen[typ], "duplicate identifier %q", typ)
		seen[typ] = true
		want := action.Format(b.Namespace().Prefix(), "UPDATE", []string{"ITEM", action.FetchStages[i]})
		assert.Equal(t, want, typ)
	}
}

func TestFetch_DefaultCallActsAsTrigger(t *testing.T) {
	t.Parallel()

	update := action.New("test", "🧪").Fetch("UPDATE")

	assert.Equal(t, update.Trigger.Empty(), update.Empty())
	assert.Equal(t, update.Trigger.New("x"), update.New("x"))
	assert.Equal(t, update.TriggerType, update.Type())
	assert.True(t, update.Match(update.Trigger.Empty()))
	assert.False(t, update.Match(update.Request.Empty()))
}

func TestFetch_DefaultFailurePayload(t *testing.T) {
	t.Parallel()

	update := action.New("test", "🧪").Fetch("UPDATE")
	a := update.Failure.New(action.ErrorPayload{Error: "x"})

	assert.Equal(t, "test 🧪 UPDATE/FAILURE", a.Type)
	require.NotNil(t, a.Payload)
	assert.Equal(t, action.ErrorPayload{Error: "x"}, *a.Payload)
	assert.Nil(t, update.Failure.Empty().Payload)
}

func TestFetch_TypedPayloads(t *testing.T) {
	t.Parallel()

	remove := action.FetchOf[triggerPayload, requestPayload, successPayload, failurePayload, fulfillPayload](
		action.New("test", "🧪"), "REMOVE")

	assert.Equal(t, triggerPayload{"happy"}, *remove.New(triggerPayload{"happy"}).Payload)
	assert.Equal(t, triggerPayload{"happy"}, *remove.Trigger.New(triggerPayload{"happy"}).Payload)
	assert.Equal(t, requestPayload{"happy"}, *remove.Request.New(requestPayload{"happy"}).Payload)
	assert.Equal(t, successPayload{"happy"}, *remove.Success.New(successPayload{"happy"}).Payload)
	assert.Equal(t, failurePayload{"happy"}, *remove.Failure.New(failurePayload{"happy"}).Payload)
	assert.Equal(t, fulfillPayload{"happy"}, *remove.Fulfill.New(fulfillPayload{"happy"}).Payload)
}

func TestFetch_BuiltTwiceIsValueEqual(t *testing.T) {
	t.Parallel()

	b := action.New("ns")
	assert.Equal(t, b.Fetch("LOAD"), b.Fetch("LOAD"))
}
