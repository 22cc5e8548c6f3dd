package routes

import (
	"testing"

	"github.com/stellarburgers/storefront"
	"github.com/stellarburgers/storefront/internal/session"
	"github.com/stretchr/testify/require"
)

func authenticatedSession() session.Session {
	return session.Session{
		Authenticated: true,
		Checked:       true,
		User:          &storefront.UserRecord{Email: "jake@example.com"},
	}
}

func anonymousSession() session.Session {
	return session.Session{Checked: true}
}

func TestDecide(t *testing.T) {
	testCases := []struct {
		name                string
		route               Route
		sess                session.Session
		pendingRevalidation bool
		loc                 Location
		decision            Decision
	}{
		{
			name:     "public route, anonymous",
			route:    Route{Name: "home", Access: Public},
			sess:     anonymousSession(),
			decision: Decision{Kind: Render},
		},
		{
			name:     "public route, authenticated",
			route:    Route{Name: "home", Access: Public},
			sess:     authenticatedSession(),
			decision: Decision{Kind: Render},
		},
		{
			name:                "pending re-validation defers every verdict",
			route:               Route{Name: "profile", Access: Protected},
			sess:                session.Session{},
			pendingRevalidation: true,
			decision:            Decision{Kind: Placeholder},
		},
		{
			name:  "protected route, anonymous",
			route: Route{Name: "profile", Access: Protected},
			sess:  anonymousSession(),
			loc:   Location{Path: "/profile"},
			// The origin rides along so login can return the visitor.
			decision: Decision{Kind: Redirect, To: "/login", From: "/profile"},
		},
		{
			name:     "protected route, authenticated",
			route:    Route{Name: "profile", Access: Protected},
			sess:     authenticatedSession(),
			decision: Decision{Kind: Render},
		},
		{
			name:     "anonymous-only route, anonymous",
			route:    Route{Name: "login", Access: AnonymousOnly},
			sess:     anonymousSession(),
			decision: Decision{Kind: Render},
		},
		{
			name:     "anonymous-only route, authenticated, no origin",
			route:    Route{Name: "login", Access: AnonymousOnly},
			sess:     authenticatedSession(),
			decision: Decision{Kind: Redirect, To: "/"},
		},
		{
			name:  "anonymous-only route, authenticated, with origin",
			route: Route{Name: "login", Access: AnonymousOnly},
			sess:  authenticatedSession(),
			loc:   Location{Path: "/login", From: "/profile"},
			// A visitor bounced to login and then authenticated returns to
			// where they were headed.
			decision: Decision{Kind: Redirect, To: "/profile"},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			decision := Decide(
				testCase.route,
				testCase.sess,
				testCase.pendingRevalidation,
				testCase.loc,
			)
			require.Equal(t, testCase.decision, decision)
		})
	}
}

func TestDecideIsPure(t *testing.T) {
	route := Route{Name: "profile", Access: Protected}
	sess := anonymousSession()
	loc := Location{Path: "/profile"}
	first := Decide(route, sess, false, loc)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, Decide(route, sess, false, loc))
	}
}
