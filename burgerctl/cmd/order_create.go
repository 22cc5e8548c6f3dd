package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/stellarburgers/storefront/internal/catalog"
	"github.com/stellarburgers/storefront/internal/constructor"
	"github.com/urfave/cli/v2"
	"github.com/xeipuuv/gojsonschema"
)

// compositionSchema validates an order composition file before any ingredient
// IDs are resolved against the catalog.
const compositionSchema = `
{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["ingredients"],
	"additionalProperties": false,
	"properties": {
		"ingredients": {
			"type": "array",
			"minItems": 2,
			"items": {
				"type": "string",
				"minLength": 1
			}
		}
	}
}
`

func orderCreate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("order create requires no arguments")
	}

	// Command-specific flags
	ingredientIDs := c.StringSlice(flagIngredient)
	filename := c.String(flagFile)

	if len(ingredientIDs) == 0 && filename == "" {
		return errors.New(
			"either --ingredient flags or a --file composition is required",
		)
	}
	if len(ingredientIDs) > 0 && filename != "" {
		return errors.New("--ingredient and --file are mutually exclusive")
	}

	if filename != "" {
		var err error
		if ingredientIDs, err = readComposition(filename); err != nil {
			return err
		}
	}

	state, err := getAppState()
	if err != nil {
		return err
	}

	// Composing happens on the home page. Submitting requires authentication;
	// the storefront sends anonymous visitors to /login at that point, so the
	// same redirect error is surfaced here.
	if _, err = navigate(c.Context, state, "/"); err != nil {
		return err
	}
	if !state.session.Snapshot().Authenticated {
		return errors.New(
			"you must be logged in to place an order; " +
				"use `burgerctl login` and retry",
		)
	}

	entries := catalog.New(state.client.Ingredients())
	comp := constructor.New()
	for _, id := range ingredientIDs {
		ingredient, err := entries.Get(c.Context, id)
		if err != nil {
			return err
		}
		comp.Add(ingredient)
	}

	// The constructor emits the bun's ID twice (top and bottom), so a
	// composition file only ever names the bun once.
	orderedIDs, err := comp.IngredientIDs()
	if err != nil {
		return err
	}

	accessToken, err := state.creds.AccessToken()
	if err != nil {
		return errors.Wrap(err, "error reading access token")
	}

	price := comp.Price()
	order, err := state.client.Orders().Create(
		c.Context,
		accessToken,
		orderedIDs,
	)
	if err != nil {
		return errors.Wrap(err, "error placing order")
	}

	// The composition survives a failed submission, but not a successful one.
	comp.Clear()

	fmt.Printf(
		"Order %d (%s) placed for %d. Track it with `burgerctl feed %d`.\n",
		order.Number,
		order.Name,
		price,
		order.Number,
	)

	return nil
}

// readComposition loads and validates an order composition file, returning
// the ingredient IDs it names.
func readComposition(filename string) ([]string, error) {
	compositionBytes, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading composition file %s", filename)
	}
	validationResult, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(compositionSchema),
		gojsonschema.NewBytesLoader(compositionBytes),
	)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error validating composition file %s",
			filename,
		)
	}
	if !validationResult.Valid() {
		verrStrs := make([]string, len(validationResult.Errors()))
		for i, verr := range validationResult.Errors() {
			verrStrs[i] = verr.String()
		}
		return nil, errors.Errorf(
			"error validating composition file %s: %v",
			filename,
			verrStrs,
		)
	}
	composition := struct {
		Ingredients []string `json:"ingredients"`
	}{}
	if err := json.Unmarshal(compositionBytes, &composition); err != nil {
		return nil, errors.Wrapf(
			err,
			"error unmarshaling composition file %s",
			filename,
		)
	}
	return composition.Ingredients, nil
}
