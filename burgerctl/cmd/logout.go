package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func logout(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("logout requires no arguments")
	}

	state, err := getAppState()
	if err != nil {
		return err
	}

	// A server-side failure doesn't stop the local teardown; the session
	// service logs it and clears the persisted credentials regardless. Only
	// the local precondition (no refresh token at all) surfaces as an error.
	if err := state.session.Logout(c.Context); err != nil {
		return errors.Wrap(err, "logout failed")
	}

	fmt.Println("Logout was successful.")

	return nil
}
