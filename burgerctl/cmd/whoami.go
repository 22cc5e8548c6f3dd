package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func whoami(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("whoami requires no arguments")
	}

	state, err := getAppState()
	if err != nil {
		return err
	}

	// The cached snapshot answers without a round trip. It can be stale by one
	// profile update from another host; `profile get` is the authoritative
	// variant.
	user, err := state.creds.UserSnapshot()
	if err != nil {
		return errors.Wrap(err, "error reading cached user snapshot")
	}
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	fmt.Printf("%s <%s>\n", user.Name, user.Email)

	return nil
}
