package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/stellarburgers/storefront"
	"github.com/urfave/cli/v2"
)

func profileGet(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("profile get requires no arguments")
	}

	// Command-specific flags
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	state, err := getAppState()
	if err != nil {
		return err
	}

	// Visiting /profile re-validates the session, which fetches the profile.
	if _, err = navigate(c.Context, state, "/profile"); err != nil {
		return err
	}

	sess := state.session.Snapshot()
	if sess.User == nil {
		return errors.New("no profile is available for the current session")
	}

	return printUser(output, *sess.User)
}

func profileUpdate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("profile update requires no arguments")
	}

	// Command-specific flags
	update := storefront.UserUpdate{
		Name:     c.String(flagName),
		Email:    c.String(flagEmail),
		Password: c.String(flagPassword),
	}
	if update == (storefront.UserUpdate{}) {
		return errors.New(
			"at least one of --name, --email, or --password is required",
		)
	}

	state, err := getAppState()
	if err != nil {
		return err
	}

	if _, err = navigate(c.Context, state, "/profile"); err != nil {
		return err
	}

	if err := state.session.UpdateUser(c.Context, update); err != nil {
		return errors.Wrap(err, "profile update failed")
	}

	sess := state.session.Snapshot()
	fmt.Printf(
		"Profile updated. You are %s <%s>.\n",
		sess.User.Name,
		sess.User.Email,
	)

	return nil
}

func printUser(output string, user storefront.UserRecord) error {
	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("NAME", "EMAIL")
		table.AddRow(user.Name, user.Email)
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(user)
		if err != nil {
			return errors.Wrap(err, "error formatting profile output")
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(user, "", "  ")
		if err != nil {
			return errors.Wrap(err, "error formatting profile output")
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
