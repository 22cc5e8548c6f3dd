package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func forgotPassword(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("forgot-password requires no arguments")
	}

	// Command-specific flags
	email := c.String(flagEmail)

	state, err := getAppState()
	if err != nil {
		return err
	}

	if _, err = navigate(c.Context, state, "/forgot-password"); err != nil {
		return err
	}

	if err := state.session.RequestPasswordReset(c.Context, email); err != nil {
		return errors.Wrap(err, "password reset request failed")
	}

	fmt.Printf(
		"A password reset code has been sent to %s. Use "+
			"`burgerctl reset-password` with that code to choose a new "+
			"password.\n",
		email,
	)

	return nil
}
