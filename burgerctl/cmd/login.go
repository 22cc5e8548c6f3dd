package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func login(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("login requires no arguments")
	}

	// Command-specific flags
	email := c.String(flagEmail)
	password := c.String(flagPassword)

	state, err := getAppState()
	if err != nil {
		return err
	}

	if _, err = navigate(c.Context, state, "/login"); err != nil {
		return err
	}

	if err := state.session.Login(c.Context, email, password); err != nil {
		if sess := state.session.Snapshot(); sess.Err != "" {
			return errors.Errorf("login failed: %s", sess.Err)
		}
		return errors.Wrap(err, "login failed")
	}

	sess := state.session.Snapshot()
	fmt.Printf("Logged in as %s <%s>.\n", sess.User.Name, sess.User.Email)

	return nil
}
