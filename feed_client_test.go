package storefront

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{}

func TestNewFeedClient(t *testing.T) {
	client := NewFeedClient(testFeedAddress, testClientAllowInsecure)
	require.IsType(t, &feedClient{}, client)
	require.Equal(t, testFeedAddress, client.(*feedClient).feedAddress)
}

func TestFeedClientFollow(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/orders/all", r.URL.Path)
				conn, err := testUpgrader.Upgrade(w, r, nil)
				require.NoError(t, err)
				defer conn.Close()
				for i := 0; i < 3; i++ {
					err = conn.WriteJSON(
						map[string]interface{}{
							"success":    true,
							"orders":     []map[string]interface{}{},
							"total":      40000 + i,
							"totalToday": i,
						},
					)
					require.NoError(t, err)
				}
				// Hold the connection open until the client hangs up.
				conn.ReadMessage() // nolint: errcheck
			},
		),
	)
	defer server.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client := NewFeedClient(
		fmt.Sprintf("%s/orders", strings.Replace(server.URL, "http", "ws", 1)),
		testClientAllowInsecure,
	)
	snapshotCh, errCh, err := client.Follow(ctx)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		select {
		case snapshot := <-snapshotCh:
			require.Equal(t, 40000+i, snapshot.Total)
		case err := <-errCh:
			require.NoError(t, err)
		case <-ctx.Done():
			require.Fail(t, "timed out waiting for a feed snapshot")
		}
	}
	cancel()
	// Cancellation must end the subscription by closing the snapshot channel.
	for range snapshotCh {
	}
}

func TestFeedClientFollowUserOrders(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/orders", r.URL.Path)
				// This endpoint authenticates via query parameter.
				require.Equal(t, testAccessToken, r.URL.Query().Get("token"))
				conn, err := testUpgrader.Upgrade(w, r, nil)
				require.NoError(t, err)
				defer conn.Close()
				err = conn.WriteJSON(
					map[string]interface{}{
						"success": true,
						"orders": []map[string]interface{}{
							{"number": 6257},
						},
						"total":      1,
						"totalToday": 1,
					},
				)
				require.NoError(t, err)
				conn.ReadMessage() // nolint: errcheck
			},
		),
	)
	defer server.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client := NewFeedClient(
		fmt.Sprintf("%s/orders", strings.Replace(server.URL, "http", "ws", 1)),
		testClientAllowInsecure,
	)
	snapshotCh, errCh, err := client.FollowUserOrders(ctx, testAccessToken)
	require.NoError(t, err)
	select {
	case snapshot := <-snapshotCh:
		require.Len(t, snapshot.Orders, 1)
		require.Equal(t, 6257, snapshot.Orders[0].Number)
	case err := <-errCh:
		require.NoError(t, err)
	case <-ctx.Done():
		require.Fail(t, "timed out waiting for a feed snapshot")
	}
}

func TestFeedClientFollowEnvelopeFailure(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				conn, err := testUpgrader.Upgrade(w, r, nil)
				require.NoError(t, err)
				defer conn.Close()
				err = conn.WriteJSON(
					map[string]interface{}{
						"success": false,
						"message": "Invalid or missing token",
					},
				)
				require.NoError(t, err)
				conn.ReadMessage() // nolint: errcheck
			},
		),
	)
	defer server.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client := NewFeedClient(
		fmt.Sprintf("%s/orders", strings.Replace(server.URL, "http", "ws", 1)),
		testClientAllowInsecure,
	)
	snapshotCh, errCh, err := client.Follow(ctx)
	require.NoError(t, err)
	select {
	case <-snapshotCh:
		require.Fail(t, "expected no snapshot from a failure message")
	case err := <-errCh:
		require.Error(t, err)
		require.IsType(t, &ErrAPI{}, err)
	case <-ctx.Done():
		require.Fail(t, "timed out waiting for the feed error")
	}
}
