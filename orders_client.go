package storefront

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
)

// OrdersClient is the specialized client for creating orders and for the
// one-shot (REST) views of the order feed. For the continuously updating feed
// see FeedClient.
type OrdersClient interface {
	// Create submits a composed order. The ingredient IDs must include the
	// bun twice (top and bottom), matching what the constructor emits.
	Create(
		ctx context.Context,
		accessToken string,
		ingredientIDs []string,
	) (Order, error)
	GetFeed(context.Context) (FeedSnapshot, error)
	GetByNumber(ctx context.Context, number int) (Order, error)
	GetUserOrders(ctx context.Context, accessToken string) ([]Order, error)
}

type ordersClient struct {
	*baseClient
}

// NewOrdersClient returns a specialized client for the storefront API's order
// endpoints.
func NewOrdersClient(apiAddress string, allowInsecure bool) OrdersClient {
	return &ordersClient{
		baseClient: &baseClient{
			apiAddress: apiAddress,
			httpClient: &http.Client{
				Transport: &http.Transport{
					TLSClientConfig: &tls.Config{
						InsecureSkipVerify: allowInsecure, // nolint: gosec
					},
				},
			},
		},
	}
}

func (o *ordersClient) Create(
	ctx context.Context,
	accessToken string,
	ingredientIDs []string,
) (Order, error) {
	respObj := struct {
		apiResponse
		Name  string `json:"name"`
		Order Order  `json:"order"`
	}{}
	err := o.executeAPIRequest(
		ctx,
		apiRequest{
			method:      http.MethodPost,
			path:        "orders",
			authHeaders: o.bearerTokenAuthHeaders(accessToken),
			reqBodyObj: struct {
				Ingredients []string `json:"ingredients"`
			}{
				Ingredients: ingredientIDs,
			},
			successCode: http.StatusOK,
			respObj:     &respObj,
		},
	)
	if err != nil {
		return Order{}, err
	}
	order := respObj.Order
	if order.Name == "" {
		order.Name = respObj.Name
	}
	return order, nil
}

func (o *ordersClient) GetFeed(ctx context.Context) (FeedSnapshot, error) {
	respObj := struct {
		apiResponse
		FeedSnapshot
	}{}
	return respObj.FeedSnapshot, o.executeAPIRequest(
		ctx,
		apiRequest{
			method:      http.MethodGet,
			path:        "orders/all",
			successCode: http.StatusOK,
			respObj:     &respObj,
		},
	)
}

func (o *ordersClient) GetByNumber(
	ctx context.Context,
	number int,
) (Order, error) {
	respObj := struct {
		apiResponse
		Orders []Order `json:"orders"`
	}{}
	if err := o.executeAPIRequest(
		ctx,
		apiRequest{
			method:      http.MethodGet,
			path:        fmt.Sprintf("orders/%d", number),
			successCode: http.StatusOK,
			respObj:     &respObj,
		},
	); err != nil {
		return Order{}, err
	}
	if len(respObj.Orders) == 0 {
		return Order{}, NewErrNotFound(fmt.Sprintf("order %d", number))
	}
	return respObj.Orders[0], nil
}

func (o *ordersClient) GetUserOrders(
	ctx context.Context,
	accessToken string,
) ([]Order, error) {
	respObj := struct {
		apiResponse
		Orders []Order `json:"orders"`
	}{}
	return respObj.Orders, o.executeAPIRequest(
		ctx,
		apiRequest{
			method:      http.MethodGet,
			path:        "orders",
			authHeaders: o.bearerTokenAuthHeaders(accessToken),
			successCode: http.StatusOK,
			respObj:     &respObj,
		},
	)
}
