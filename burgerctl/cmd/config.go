package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const envconfigPrefix = "STOREFRONT"

// config represents the client's connection settings. Unlike the credentials,
// these aren't persisted by the client; they come from the environment (or a
// .env file) on every run.
type config struct {
	APIAddress  string `envconfig:"API_ADDRESS" default:"https://norma.nomoreparties.space/api"`
	FeedAddress string `envconfig:"FEED_ADDRESS" default:"wss://norma.nomoreparties.space/orders"`
	Insecure    bool   `envconfig:"INSECURE"`
}

func getConfig() (config, error) {
	c := config{}
	if err := envconfig.Process(envconfigPrefix, &c); err != nil {
		return c, errors.Wrap(
			err,
			"error getting storefront configuration from environment",
		)
	}
	return c, nil
}
