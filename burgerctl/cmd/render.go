package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/stellarburgers/storefront"
)

func printOrders(output string, snapshot storefront.FeedSnapshot) error {
	switch strings.ToLower(output) {
	case "table":
		if len(snapshot.Orders) == 0 {
			fmt.Println("No orders found.")
		} else {
			table := uitable.New()
			table.AddRow("NUMBER", "NAME", "STATUS", "CREATED")
			for _, order := range snapshot.Orders {
				table.AddRow(
					order.Number,
					order.Name,
					order.Status,
					order.CreatedAt,
				)
			}
			fmt.Println(table)
		}
		if snapshot.Total > 0 {
			fmt.Printf(
				"\nCompleted all time: %d. Completed today: %d.\n",
				snapshot.Total,
				snapshot.TotalToday,
			)
		}

	case "yaml":
		yamlBytes, err := yaml.Marshal(snapshot)
		if err != nil {
			return errors.Wrap(err, "error formatting orders output")
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return errors.Wrap(err, "error formatting orders output")
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}

func printOrder(output string, order storefront.Order) error {
	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("NUMBER", "NAME", "STATUS", "INGREDIENTS", "CREATED")
		table.AddRow(
			order.Number,
			order.Name,
			order.Status,
			len(order.Ingredients),
			order.CreatedAt,
		)
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(order)
		if err != nil {
			return errors.Wrap(err, "error formatting order output")
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(order, "", "  ")
		if err != nil {
			return errors.Wrap(err, "error formatting order output")
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}

func printIngredients(
	output string,
	ingredients []storefront.Ingredient,
) error {
	if len(ingredients) == 0 {
		fmt.Println("No ingredients found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "TYPE", "PRICE", "CALORIES")
		for _, ingredient := range ingredients {
			table.AddRow(
				ingredient.ID,
				ingredient.Name,
				ingredient.Type,
				ingredient.Price,
				ingredient.Calories,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(ingredients)
		if err != nil {
			return errors.Wrap(err, "error formatting ingredients output")
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(ingredients, "", "  ")
		if err != nil {
			return errors.Wrap(err, "error formatting ingredients output")
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
