package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/stellarburgers/storefront/internal/routes"
)

// navigate runs a command's route through the guard. It returns the resolved
// match when the route may render; a guard redirect becomes an error telling
// the user where they were sent instead.
func navigate(
	ctx context.Context,
	state *appState,
	path string,
) (routes.Match, error) {
	match, decision, err := state.navigator.Visit(ctx, path, "")
	if err != nil {
		return match, err
	}
	switch decision.Kind {
	case routes.Render:
		return match, nil
	case routes.Placeholder:
		// The navigator re-validates synchronously, so an unresolved check
		// here means a concurrent caller is mid-flight. Nothing to render.
		return match, errors.New(
			"session check still in progress; try again in a moment",
		)
	case routes.Redirect:
		if decision.To == "/login" {
			return match, errors.Errorf(
				"you must be logged in to visit %s; "+
					"use `burgerctl login` and retry",
				decision.From,
			)
		}
		return match, errors.Errorf(
			"already logged in; %s is for anonymous visitors (sent to %s)",
			path,
			decision.To,
		)
	}
	return match, errors.Errorf("unexpected guard decision %d", decision.Kind)
}

// renderBackground notes the list view a modal route overlays, standing in
// for what the storefront renders behind the modal.
func renderBackground(path string) {
	fmt.Printf("(background: %s)\n\n", path)
}
