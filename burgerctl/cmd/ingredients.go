package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/stellarburgers/storefront"
	"github.com/stellarburgers/storefront/internal/catalog"
	"github.com/urfave/cli/v2"
)

func ingredientsList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("ingredients list requires no arguments")
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

	if _, err = navigate(c.Context, state, "/"); err != nil {
		return err
	}

	ingredients, err := catalog.New(state.client.Ingredients()).Ensure(c.Context)
	if err != nil {
		return err
	}

	return printIngredients(output, ingredients)
}

func ingredientsGet(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"ingredients get requires one argument-- an ingredient ID",
		)
	}
	id := c.Args().Get(0)

	// Command-specific flags
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	state, err := getAppState()
	if err != nil {
		return err
	}

	match, err := navigate(
		c.Context,
		state,
		fmt.Sprintf("/ingredients/%s", id),
	)
	if err != nil {
		return err
	}
	renderBackground(match.Route.Background)

	ingredient, err := catalog.New(state.client.Ingredients()).Get(c.Context, id)
	if err != nil {
		return err
	}

	return printIngredients(output, []storefront.Ingredient{ingredient})
}
