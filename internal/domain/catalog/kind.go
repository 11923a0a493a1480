package catalog

// Kind selects how a declaration expands into identifiers.
type Kind string

const (
	KindSingle   Kind = "single"
	KindFetch    Kind = "fetch"
	KindProgress Kind = "progress"
)

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindSingle, KindFetch, KindProgress:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
