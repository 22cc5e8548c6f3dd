package main

import (
	"github.com/pkg/errors"
	"github.com/stellarburgers/storefront"
)

func getClient() (storefront.Client, error) {
	config, err := getConfig()
	if err != nil {
		return nil, errors.Wrap(err, "error retrieving configuration")
	}
	return storefront.NewClient(
		config.APIAddress,
		config.FeedAddress,
		config.Insecure,
	), nil
}
