package storefront

import (
	"context"
	"crypto/tls"
	"net/http"
)

// IngredientsClient is the specialized client for the storefront API's
// ingredient catalog.
type IngredientsClient interface {
	List(context.Context) ([]Ingredient, error)
}

type ingredientsClient struct {
	*baseClient
}

// NewIngredientsClient returns a specialized client for the storefront API's
// ingredient catalog.
func NewIngredientsClient(
	apiAddress string,
	allowInsecure bool,
) IngredientsClient {
	return &ingredientsClient{
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

func (i *ingredientsClient) List(ctx context.Context) ([]Ingredient, error) {
	respObj := struct {
		apiResponse
		Data []Ingredient `json:"data"`
	}{}
	return respObj.Data, i.executeAPIRequest(
		ctx,
		apiRequest{
			method:      http.MethodGet,
			path:        "ingredients",
			successCode: http.StatusOK,
			respObj:     &respObj,
		},
	)
}
