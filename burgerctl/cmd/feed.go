package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/stellarburgers/storefront"
	"github.com/urfave/cli/v2"
)

func feed(c *cli.Context) error {
	// Args
	if c.Args().Len() > 1 {
		return errors.New(
			"feed requires, at most, one argument-- an order number",
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
			return errors.Errorf("%q is not an order number", c.Args().Get(0))
		}
		match, err := navigate(
			c.Context,
			state,
			fmt.Sprintf("/feed/%d", number),
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

	if _, err = navigate(c.Context, state, "/feed"); err != nil {
		return err
	}

	if follow {
		return followFeed(c.Context, output, func() (
			<-chan storefront.FeedSnapshot,
			<-chan error,
			error,
		) {
			return state.client.Feed().Follow(c.Context)
		})
	}

	snapshot, err := state.client.Orders().GetFeed(c.Context)
	if err != nil {
		return errors.Wrap(err, "error retrieving order feed")
	}

	return printOrders(output, snapshot)
}

// followFeed renders every snapshot a live subscription delivers until the
// subscription ends or the context is canceled.
func followFeed(
	ctx context.Context,
	output string,
	subscribe func() (<-chan storefront.FeedSnapshot, <-chan error, error),
) error {
	snapshotCh, errCh, err := subscribe()
	if err != nil {
		return errors.Wrap(err, "error subscribing to order feed")
	}
	for {
		select {
		case snapshot, ok := <-snapshotCh:
			if !ok {
				if err, ok := <-errCh; ok && err != nil {
					return err
				}
				return nil
			}
			if err := printOrders(output, snapshot); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}
