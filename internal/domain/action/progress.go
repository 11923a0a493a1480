package action

// Stage names of a progress lifecycle.
const (
	StageProgress = "PROGRESS"
	StageAbort    = "ABORT"
)

// ProgressStages lists the progress lifecycle stages in order.
var ProgressStages = []string{StageProgress, StageAbort}

// ProgressGroup bundles the progress and abort creators of one action. It
// has no default creator.
type ProgressGroup[P, A any] struct {
	Progress Creator[P]
	Abort    Creator[A]

	ProgressType string
	AbortType    string
}

// NewProgress builds a progress group from a sub-action factory.
func NewProgress[P, A any](sub SubAction) ProgressGroup[P, A] {
	progress := Stage[P](sub, StageProgress)
	abort := Stage[A](sub, StageAbort)
	return ProgressGroup[P, A]{
		Progress:     progress,
		Abort:        abort,
		ProgressType: progress.Type(),
		AbortType:    abort.Type(),
	}
}

// Types returns both identifiers, progress first.
func (g ProgressGroup[P, A]) Types() []string {
	return []string{g.ProgressType, g.AbortType}
}
