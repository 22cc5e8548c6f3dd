package routes

import "github.com/stellarburgers/storefront/internal/session"

// DecisionKind enumerates the guard's three possible verdicts.
type DecisionKind int

const (
	// Render admits the requested content.
	Render DecisionKind = iota
	// Redirect sends the visitor elsewhere; Decision.To names the target and
	// Decision.From remembers the origin for a post-login return.
	Redirect
	// Placeholder defers the verdict-- re-validation hasn't concluded yet.
	Placeholder
)

type Decision struct {
	Kind DecisionKind
	To   string
	From string
}

// Location is the navigation input to a guard decision: the path being
// visited and, when present, the origin carried along in navigation state.
type Location struct {
	Path string
	From string
}

// Decide is the route guard. It is a pure function of its inputs: identical
// inputs always yield the identical decision, and it performs no side
// effects. The surrounding navigator is responsible for triggering
// re-validation and feeding current inputs.
func Decide(
	route Route,
	sess session.Session,
	pendingRevalidation bool,
	loc Location,
) Decision {
	if pendingRevalidation {
		return Decision{Kind: Placeholder}
	}
	if route.Access == AnonymousOnly && sess.Authenticated {
		to := loc.From
		if to == "" {
			to = "/"
		}
		return Decision{Kind: Redirect, To: to}
	}
	if route.Access == Protected && !sess.Authenticated {
		return Decision{Kind: Redirect, To: "/login", From: loc.Path}
	}
	return Decision{Kind: Render}
}
