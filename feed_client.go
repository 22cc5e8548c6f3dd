package storefront

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/golang/glog"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

// FeedClient is the specialized client for the continuously updating order
// feed, which the API serves over a websocket. Every message on the socket is
// a complete FeedSnapshot; consumers simply render the latest one.
type FeedClient interface {
	// Follow subscribes to the public feed of all orders. Snapshots arrive on
	// the first channel until the context is canceled or the connection
	// fails; a terminal failure is reported on the second channel. Both
	// channels are closed when the subscription ends.
	Follow(ctx context.Context) (<-chan FeedSnapshot, <-chan error, error)
	// FollowUserOrders subscribes to the authenticated user's own orders.
	FollowUserOrders(
		ctx context.Context,
		accessToken string,
	) (<-chan FeedSnapshot, <-chan error, error)
}

type feedClient struct {
	feedAddress string
	dialer      *websocket.Dialer
}

// NewFeedClient returns a specialized client for the storefront API's live
// order feed. feedAddress is the websocket base address, e.g.
// wss://example.com/orders.
func NewFeedClient(feedAddress string, allowInsecure bool) FeedClient {
	return &feedClient{
		feedAddress: feedAddress,
		dialer: &websocket.Dialer{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: allowInsecure, // nolint: gosec
			},
		},
	}
}

func (f *feedClient) Follow(
	ctx context.Context,
) (<-chan FeedSnapshot, <-chan error, error) {
	return f.follow(ctx, fmt.Sprintf("%s/all", f.feedAddress))
}

func (f *feedClient) FollowUserOrders(
	ctx context.Context,
	accessToken string,
) (<-chan FeedSnapshot, <-chan error, error) {
	// The feed endpoint authenticates via query parameter rather than via an
	// Authorization header. Protocol quirk owned by the API.
	return f.follow(
		ctx,
		fmt.Sprintf("%s?token=%s", f.feedAddress, accessToken),
	)
}

func (f *feedClient) follow(
	ctx context.Context,
	address string,
) (<-chan FeedSnapshot, <-chan error, error) {
	conn, _, err := f.dialer.DialContext(ctx, address, http.Header{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "error connecting to order feed")
	}

	snapshotCh := make(chan FeedSnapshot)
	errCh := make(chan error, 1)

	// The reader below blocks in ReadJSON; closing the connection is the only
	// way to unblock it when the context is canceled.
	go func() {
		<-ctx.Done()
		conn.Close() // nolint: errcheck
	}()

	go func() {
		defer close(snapshotCh)
		defer close(errCh)
		for {
			msg := struct {
				apiResponse
				FeedSnapshot
			}{}
			if err := conn.ReadJSON(&msg); err != nil {
				if ctx.Err() == nil {
					glog.Warningf("order feed connection lost: %s", err)
					errCh <- errors.Wrap(err, "error reading from order feed")
				}
				return
			}
			if !msg.succeeded() {
				errCh <- NewErrAPI(msg.failureMsg())
				return
			}
			select {
			case snapshotCh <- msg.FeedSnapshot:
			case <-ctx.Done():
				return
			}
		}
	}()

	return snapshotCh, errCh, nil
}
