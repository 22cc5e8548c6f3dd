package catalog

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/stellarburgers/storefront"
)

// Catalog is a fetch-once cache of the ingredient list. The catalog changes
// rarely enough that one fetch per process is the right default; Refresh
// forces a new fetch when a caller knows better.
type Catalog struct {
	mu      sync.Mutex
	client  storefront.IngredientsClient
	entries []storefront.Ingredient
	byID    map[string]storefront.Ingredient
	loaded  bool
}

func New(client storefront.IngredientsClient) *Catalog {
	return &Catalog{
		client: client,
		byID:   map[string]storefront.Ingredient{},
	}
}

// Ensure returns the cached ingredient list, fetching it first if no fetch
// has succeeded yet.
func (c *Catalog) Ensure(ctx context.Context) ([]storefront.Ingredient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.entries, nil
	}
	return c.fetch(ctx)
}

// Refresh discards the cache and fetches the catalog anew.
func (c *Catalog) Refresh(ctx context.Context) ([]storefront.Ingredient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetch(ctx)
}

// Get looks an ingredient up by ID, fetching the catalog first if needed.
func (c *Catalog) Get(
	ctx context.Context,
	id string,
) (storefront.Ingredient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		if _, err := c.fetch(ctx); err != nil {
			return storefront.Ingredient{}, err
		}
	}
	ingredient, ok := c.byID[id]
	if !ok {
		return storefront.Ingredient{}, errors.Errorf(
			"no ingredient with ID %q in the catalog",
			id,
		)
	}
	return ingredient, nil
}

// fetch must be called with the mutex held.
func (c *Catalog) fetch(ctx context.Context) ([]storefront.Ingredient, error) {
	entries, err := c.client.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error fetching ingredient catalog")
	}
	c.entries = entries
	c.byID = make(map[string]storefront.Ingredient, len(entries))
	for _, entry := range entries {
		c.byID[entry.ID] = entry
	}
	c.loaded = true
	return c.entries, nil
}
