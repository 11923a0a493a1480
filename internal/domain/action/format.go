package action

import "strings"

const (
	namespaceSeparator = " "
	stageSeparator     = "/"
)

// Format composes an identifier from a prefix, an action name and an ordered
// list of sub-stages. The prefix is used verbatim; callers supply the
// trailing separator (see Prefix).
func Format(prefix, actionName string, subStages []string) string {
	if len(subStages) == 0 {
		return prefix + actionName
	}
	return prefix + actionName + stageSeparator + strings.Join(subStages, stageSeparator)
}

// Prefix returns the identifier prefix for a namespace: empty for no
// fragments, otherwise the fragments joined by single spaces plus one
// trailing space.
func Prefix(fragments []string) string {
	if len(fragments) == 0 {
		return ""
	}
	return strings.Join(fragments, namespaceSeparator) + namespaceSeparator
}
