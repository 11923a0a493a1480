// Package action derives hierarchical action identifiers and builds the
// creators that stamp payloads with them.
//
// An identifier is composed from a namespace, an action name and an
// optional path of sub-stages:
//
//	New("todo", "📝").Type("UPDATE")             // "todo 📝 UPDATE"
//	New("todo", "📝").Type("UPDATE", "TRIGGER")  // "todo 📝 UPDATE/TRIGGER"
//	New().Type("REPOSITION")                     // "REPOSITION"
//
// Lifecycle groups bundle sibling creators that share an action name:
//
//	b := action.New("todo", "📝")
//	update := b.Fetch("UPDATE")
//	update.New(payload)              // same as update.Trigger.New(payload)
//	update.Failure.New(action.ErrorPayload{Error: "boom"})
//	update.FailureType               // "todo 📝 UPDATE/FAILURE"
//
// Typed creators and groups are built with the generic package functions
// BuildOf, FetchOf and ProgressOf. Every function in this package is pure
// and safe for concurrent use.
package action
