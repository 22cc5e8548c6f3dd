package main

import (
	"github.com/pkg/errors"
	"github.com/stellarburgers/storefront"
	"github.com/stellarburgers/storefront/internal/credentials"
	"github.com/stellarburgers/storefront/internal/routes"
	"github.com/stellarburgers/storefront/internal/session"
)

// appState bundles everything one command invocation needs: the API client,
// the session service over the persisted credentials, and the navigator that
// guards the command's route.
type appState struct {
	client    storefront.Client
	creds     credentials.Bundle
	session   session.Service
	navigator *routes.Navigator
}

func getAppState() (*appState, error) {
	client, err := getClient()
	if err != nil {
		return nil, err
	}
	creds, err := credentials.NewBundleFromEnvironment()
	if err != nil {
		return nil, errors.Wrap(err, "error assembling credential stores")
	}
	svc := session.NewService(session.NewStore(), client.Auth(), creds)
	return &appState{
		client:    client,
		creds:     creds,
		session:   svc,
		navigator: routes.NewNavigator(routes.NewResolver(), svc),
	}, nil
}
