package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func resetPassword(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("reset-password requires no arguments")
	}

	// Command-specific flags
	password := c.String(flagPassword)
	resetToken := c.String(flagToken)

	state, err := getAppState()
	if err != nil {
		return err
	}

	if _, err = navigate(c.Context, state, "/reset-password"); err != nil {
		return err
	}

	if err := state.session.ConfirmPasswordReset(
		c.Context,
		password,
		resetToken,
	); err != nil {
		return errors.Wrap(err, "password reset failed")
	}

	fmt.Println(
		"Password was reset. The session will be re-validated on your next " +
			"command.",
	)

	return nil
}
