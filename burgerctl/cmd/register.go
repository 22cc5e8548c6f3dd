package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func register(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("register requires no arguments")
	}

	// Command-specific flags
	name := c.String(flagName)
	email := c.String(flagEmail)
	password := c.String(flagPassword)

	state, err := getAppState()
	if err != nil {
		return err
	}

	if _, err = navigate(c.Context, state, "/register"); err != nil {
		return err
	}

	if err := state.session.Register(
		c.Context,
		name,
		email,
		password,
	); err != nil {
		if sess := state.session.Snapshot(); sess.Err != "" {
			return errors.Errorf("registration failed: %s", sess.Err)
		}
		return errors.Wrap(err, "registration failed")
	}

	sess := state.session.Snapshot()
	fmt.Printf(
		"Registered and logged in as %s <%s>.\n",
		sess.User.Name,
		sess.User.Email,
	)

	return nil
}
