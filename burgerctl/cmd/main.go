package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/stellarburgers/storefront/internal/signals"
	"github.com/urfave/cli/v2"
)

func main() {
	// A .env in the working directory seeds STOREFRONT_*, CREDENTIALS_*, and
	// REDIS_* for local hacking. Absence is not an error.
	godotenv.Load() // nolint: errcheck

	app := cli.NewApp()
	app.Name = "burgerctl"
	app.Usage = "Compose burgers and place orders at the Stellar Burgers " +
		"storefront"
	app.Commands = []*cli.Command{
		{
			Name:  "feed",
			Usage: "View the public order feed, or one order from it",
			Description: "With no argument, shows the current feed. With an " +
				"order number, shows that order.",
			ArgsUsage: "[ORDER_NUMBER]",
			Flags: []cli.Flag{
				cliFlagOutput,
				&cli.BoolFlag{
					Name:    flagFollow,
					Aliases: []string{"f"},
					Usage: "If set, will stream feed updates until interrupted " +
						"(ignores ORDER_NUMBER argument)",
				},
			},
			Action: feed,
		},
		{
			Name:  "forgot-password",
			Usage: "Request a password reset code",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagEmail,
					Aliases:  []string{"e"},
					Usage:    "The email address of the account to reset",
					Required: true,
				},
			},
			Action: forgotPassword,
		},
		{
			Name:  "ingredients",
			Usage: "Browse the ingredient catalog",
			Subcommands: []*cli.Command{
				{
					Name:      "get",
					Usage:     "Get an ingredient",
					ArgsUsage: "INGREDIENT_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: ingredientsGet,
				},
				{
					Name:  "list",
					Usage: "List ingredients",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: ingredientsList,
				},
			},
		},
		{
			Name:  "login",
			Usage: "Log in to the storefront",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagEmail,
					Aliases:  []string{"e"},
					Usage:    "The email address to log in with",
					Required: true,
				},
				&cli.StringFlag{
					Name:     flagPassword,
					Aliases:  []string{"p"},
					Usage:    "The password to log in with",
					Required: true,
				},
			},
			Action: login,
		},
		{
			Name:   "logout",
			Usage:  "Log out of the storefront",
			Action: logout,
		},
		{
			Name:  "order",
			Usage: "Compose and place orders",
			Subcommands: []*cli.Command{
				{
					Name:  "create",
					Usage: "Compose an order and place it",
					Description: "Name the composition's ingredients with " +
						"repeated --ingredient flags (the bun once; it is " +
						"counted top and bottom) or with a JSON composition " +
						"file.",
					Flags: []cli.Flag{
						&cli.StringSliceFlag{
							Name:    flagIngredient,
							Aliases: []string{"i"},
							Usage: "The ID of an ingredient to include; may " +
								"be specified repeatedly",
						},
						&cli.StringFlag{
							Name:    flagFile,
							Aliases: []string{"f"},
							Usage: "The location of a JSON file naming the " +
								"composition's ingredients",
						},
					},
					Action: orderCreate,
				},
			},
		},
		{
			Name:  "profile",
			Usage: "Manage your profile and view your orders",
			Subcommands: []*cli.Command{
				{
					Name:  "get",
					Usage: "Get your profile",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: profileGet,
				},
				{
					Name:  "orders",
					Usage: "View your order history, or one order from it",
					Description: "With no argument, lists your orders. With " +
						"an order number, shows that order.",
					ArgsUsage: "[ORDER_NUMBER]",
					Flags: []cli.Flag{
						cliFlagOutput,
						&cli.BoolFlag{
							Name:    flagFollow,
							Aliases: []string{"f"},
							Usage: "If set, will stream updates to your " +
								"orders until interrupted (ignores " +
								"ORDER_NUMBER argument)",
						},
					},
					Action: profileOrders,
				},
				{
					Name:  "update",
					Usage: "Update your profile",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:    flagName,
							Aliases: []string{"n"},
							Usage:   "A new display name",
						},
						&cli.StringFlag{
							Name:    flagEmail,
							Aliases: []string{"e"},
							Usage:   "A new email address",
						},
						&cli.StringFlag{
							Name:    flagPassword,
							Aliases: []string{"p"},
							Usage:   "A new password",
						},
					},
					Action: profileUpdate,
				},
			},
		},
		{
			Name:  "register",
			Usage: "Register a new storefront account",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagName,
					Aliases:  []string{"n"},
					Usage:    "The display name for the new account",
					Required: true,
				},
				&cli.StringFlag{
					Name:     flagEmail,
					Aliases:  []string{"e"},
					Usage:    "The email address for the new account",
					Required: true,
				},
				&cli.StringFlag{
					Name:     flagPassword,
					Aliases:  []string{"p"},
					Usage:    "The password for the new account",
					Required: true,
				},
			},
			Action: register,
		},
		{
			Name:  "reset-password",
			Usage: "Choose a new password using a reset code",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagPassword,
					Aliases:  []string{"p"},
					Usage:    "The new password",
					Required: true,
				},
				&cli.StringFlag{
					Name:     flagToken,
					Aliases:  []string{"t"},
					Usage:    "The reset code from the forgot-password email",
					Required: true,
				},
			},
			Action: resetPassword,
		},
		{
			Name:   "whoami",
			Usage:  "Show the logged-in account from the cached snapshot",
			Action: whoami,
		},
	}
	fmt.Println()
	if err := app.RunContext(signals.Context(), os.Args); err != nil {
		fmt.Printf("\n%s\n\n", err)
		os.Exit(1)
	}
	fmt.Println()
}
