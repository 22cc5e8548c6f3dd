package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewOrdersClient(t *testing.T) {
	client := NewOrdersClient(testAPIAddress, testClientAllowInsecure)
	require.IsType(t, &ordersClient{}, client)
	requireBaseClient(t, client.(*ordersClient).baseClient)
}

func TestOrdersClientCreate(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/orders", r.URL.Path)
				require.Equal(
					t,
					fmt.Sprintf("Bearer %s", testAccessToken),
					r.Header.Get("Authorization"),
				)
				body := struct {
					Ingredients []string `json:"ingredients"`
				}{}
				err := json.NewDecoder(r.Body).Decode(&body)
				require.NoError(t, err)
				require.Equal(t, []string{"bun", "sauce", "bun"}, body.Ingredients)
				fmt.Fprint(
					w,
					`{
						"success": true,
						"name": "Space burger",
						"order": {"number": 6257}
					}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewOrdersClient(server.URL, testClientAllowInsecure)
	order, err := client.Create(
		context.Background(),
		testAccessToken,
		[]string{"bun", "sauce", "bun"},
	)
	require.NoError(t, err)
	require.Equal(t, 6257, order.Number)
	// The order name arrives top-level on this endpoint.
	require.Equal(t, "Space burger", order.Name)
}

func TestOrdersClientGetFeed(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/orders/all", r.URL.Path)
				fmt.Fprint(
					w,
					`{
						"success": true,
						"orders": [
							{"number": 6257, "status": "done"},
							{"number": 6258, "status": "pending"}
						],
						"total": 40000,
						"totalToday": 47
					}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewOrdersClient(server.URL, testClientAllowInsecure)
	snapshot, err := client.GetFeed(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot.Orders, 2)
	require.Equal(t, OrderStatusDone, snapshot.Orders[0].Status)
	require.Equal(t, 40000, snapshot.Total)
	require.Equal(t, 47, snapshot.TotalToday)
}

func TestOrdersClientGetByNumber(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/orders/6257", r.URL.Path)
				fmt.Fprint(
					w,
					`{"success": true, "orders": [{"number": 6257}]}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewOrdersClient(server.URL, testClientAllowInsecure)
	order, err := client.GetByNumber(context.Background(), 6257)
	require.NoError(t, err)
	require.Equal(t, 6257, order.Number)
}

func TestOrdersClientGetByNumberNotFound(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				// The API reports an unknown order with an empty list, not with
				// a 404.
				fmt.Fprint(w, `{"success": true, "orders": []}`)
			},
		),
	)
	defer server.Close()
	client := NewOrdersClient(server.URL, testClientAllowInsecure)
	_, err := client.GetByNumber(context.Background(), 99999)
	require.Error(t, err)
	require.IsType(t, &ErrNotFound{}, err)
}

func TestOrdersClientGetUserOrders(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/orders", r.URL.Path)
				require.Equal(
					t,
					fmt.Sprintf("Bearer %s", testAccessToken),
					r.Header.Get("Authorization"),
				)
				fmt.Fprint(
					w,
					`{"success": true, "orders": [{"number": 6257}]}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewOrdersClient(server.URL, testClientAllowInsecure)
	orders, err := client.GetUserOrders(context.Background(), testAccessToken)
	require.NoError(t, err)
	require.Len(t, orders, 1)
}
