package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/stellarburgers/storefront"
	"github.com/urfave/cli/v2"
)

func profileOrders(c *cli.Context) error {
	// Args
	if c.Args().Len() > 1 {
		return errors.New(
			"profile orders requires, at most, one argument-- an order number",
		)
	}

	// Command-specific flags
	output := c.String(flagOutput)
	follow := c.Bool(flagFollow)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	state, err := getAppState()
	if err != nil {
		return err
	}

	if c.Args().Len() == 1 {
		number, err := strconv.Atoi(c.Args().Get(0))
		if err != nil {
			return errors.Errorf(
				"%q is not an order number",
				c.Args().Get(0),
			)
		}
		match, err := navigate(
			c.Context,
			state,
			fmt.Sprintf("/profile/orders/%d", number),
		)
		if err != nil {
			return err
		}
		renderBackground(match.Route.Background)
		order, err := state.client.Orders().GetByNumber(c.Context, number)
		if err != nil {
			return errors.Wrap(err, "error retrieving order")
		}
		return printOrder(output, order)
	}

	if _, err = navigate(c.Context, state, "/profile/orders"); err != nil {
		return err
	}

	accessToken, err := state.creds.AccessToken()
	if err != nil {
		return errors.Wrap(err, "error reading access token")
	}

	if follow {
		return followFeed(c.Context, output, func() (
			<-chan storefront.FeedSnapshot,
			<-chan error,
			error,
		) {
			return state.client.Feed().FollowUserOrders(c.Context, accessToken)
		})
	}

	orders, err := state.client.Orders().GetUserOrders(c.Context, accessToken)
	if err != nil {
		return errors.Wrap(err, "error retrieving your orders")
	}

	return printOrders(output, storefront.FeedSnapshot{Orders: orders})
}
