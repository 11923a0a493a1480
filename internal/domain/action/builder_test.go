package action_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeJamboree/action-builder/internal/domain/action"
)

func TestBuilder_BasicBuild(t *testing.T) {
	t.Parallel()

	repo := action.TypedBuild[reposition](action.New("test", "🧪"), "REPOSITION")
	want := "test 🧪 REPOSITION"

	assert.Equal(t, want, repo.Type())

	a := repo.New(reposition{ID: 2, Position: "after", TargetID: 32})
	assert.Equal(t, want, a.Type)
	assert.Equal(t, 2, a.Payload.ID)
	assert.Equal(t, "after", a.Payload.Position)
	assert.Equal(t, 32, a.Payload.TargetID)
}

func TestBuilder_EmptyNamespace(t *testing.T) {
	t.Parallel()

	a := action.New().Build("REPOSITION").New(map[string]any{"id": 2})

	assert.Equal(t, "REPOSITION", a.Type)
	require.NotNil(t, a.Payload)
	assert.Equal(t, map[string]any{"id": 2}, *a.Payload)
}

func TestBuilder_DefaultCallMatchesNamespace(t *testing.T) {
	t.Parallel()

	b := action.New("a", "b")

	assert.Equal(t, b.Namespace().Build("X", "Y"), b.Build("X", "Y"))
	assert.Equal(t, "a b X/Y", b.Type("X", "Y"))
}

func TestBuilder_FetchScenario(t *testing.T) {
	t.Parallel()

	update := action.New("test", "🧪").Fetch("UPDATE")
	failure := update.Failure.New(action.ErrorPayload{Error: "x"})

	assert.Equal(t, "test 🧪 UPDATE/TRIGGER", update.TriggerType)
	assert.Equal(t, "test 🧪 UPDATE/FAILURE", failure.Type)
	assert.Equal(t, &action.ErrorPayload{Error: "x"}, failure.Payload)
}

func TestBuilder_ProgressScenario(t *testing.T) {
	t.Parallel()

	read := action.New("test", "🧪").Progress("READ")

	assert.Nil(t, read.Abort.Empty().Payload)
	assert.Equal(t, &action.AbortPayload{Reason: "a"}, read.Abort.New(action.AbortPayload{Reason: "a"}).Payload)
}

func ExampleBuilder_Fetch() {
	update := action.New("todo", "📝").Fetch("UPDATE")

	fmt.Println(update.TriggerType)
	fmt.Println(update.Failure.New(action.ErrorPayload{Error: "timeout"}).Type)
	// Output:
	// todo 📝 UPDATE/TRIGGER
	// todo 📝 UPDATE/FAILURE
}
