package session

import "github.com/stellarburgers/storefront"

// Session is the client's in-memory record of authentication status. The
// zero value is the state of a fresh, unauthenticated client.
type Session struct {
	// Authenticated is true once a successful login, registration, or
	// re-validation has completed.
	Authenticated bool
	// Checked is true once a startup re-validation attempt has concluded,
	// success or failure. Route guarding renders a placeholder rather than a
	// decision until it is set, which is what prevents a flash of
	// redirect-to-login before the long-lived credential has been checked.
	Checked bool
	// User is the last known profile. Replaced wholesale, never partially
	// mutated.
	User *storefront.UserRecord
	// Loading is true while any session-affecting request is in flight.
	Loading bool
	// Err carries the user-facing message of the most recent rejected
	// operation, empty otherwise.
	Err string
}
