package storefront

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIngredientsClient(t *testing.T) {
	client := NewIngredientsClient(testAPIAddress, testClientAllowInsecure)
	require.IsType(t, &ingredientsClient{}, client)
	requireBaseClient(t, client.(*ingredientsClient).baseClient)
}

func TestIngredientsClientList(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/ingredients", r.URL.Path)
				require.Empty(t, r.Header.Get("Authorization"))
				fmt.Fprint(
					w,
					`{
						"success": true,
						"data": [
							{"_id": "bun1", "name": "Fluorescent bun", "type": "bun", "price": 988},
							{"_id": "sauce1", "name": "Spicy X sauce", "type": "sauce", "price": 90}
						]
					}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewIngredientsClient(server.URL, testClientAllowInsecure)
	ingredients, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ingredients, 2)
	require.Equal(t, "bun1", ingredients[0].ID)
	require.Equal(t, IngredientTypeBun, ingredients[0].Type)
	require.Equal(t, 90, ingredients[1].Price)
}
