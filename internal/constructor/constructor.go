package constructor

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/stellarburgers/storefront"
)

// Constructor holds an in-progress order composition: at most one bun
// (replaced wholesale when another is chosen) and an ordered list of
// fillings. It is cleared automatically when the composed order is
// successfully submitted.
type Constructor struct {
	mu       sync.Mutex
	bun      *storefront.Ingredient
	fillings []storefront.Ingredient
}

func New() *Constructor {
	return &Constructor{}
}

// Add places an ingredient into the composition. A bun replaces the current
// bun; anything else is appended to the fillings.
func (c *Constructor) Add(ingredient storefront.Ingredient) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ingredient.Type == storefront.IngredientTypeBun {
		bun := ingredient
		c.bun = &bun
		return
	}
	c.fillings = append(c.fillings, ingredient)
}

// Remove deletes the filling at the given position.
func (c *Constructor) Remove(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.fillings) {
		return errors.Errorf("no filling at position %d", index)
	}
	c.fillings = append(c.fillings[:index], c.fillings[index+1:]...)
	return nil
}

// MoveUp swaps the filling at the given position with its predecessor.
func (c *Constructor) MoveUp(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index <= 0 || index >= len(c.fillings) {
		return errors.Errorf("cannot move filling at position %d up", index)
	}
	c.fillings[index-1], c.fillings[index] =
		c.fillings[index], c.fillings[index-1]
	return nil
}

// MoveDown swaps the filling at the given position with its successor.
func (c *Constructor) MoveDown(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.fillings)-1 {
		return errors.Errorf("cannot move filling at position %d down", index)
	}
	c.fillings[index], c.fillings[index+1] =
		c.fillings[index+1], c.fillings[index]
	return nil
}

// Clear empties the composition.
func (c *Constructor) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bun = nil
	c.fillings = nil
}

// Bun returns the chosen bun, if any.
func (c *Constructor) Bun() (storefront.Ingredient, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bun == nil {
		return storefront.Ingredient{}, false
	}
	return *c.bun, true
}

// Fillings returns a copy of the current fillings in order.
func (c *Constructor) Fillings() []storefront.Ingredient {
	c.mu.Lock()
	defer c.mu.Unlock()
	fillings := make([]storefront.Ingredient, len(c.fillings))
	copy(fillings, c.fillings)
	return fillings
}

// IngredientIDs returns the composition as the API expects it: the bun's ID
// first and last (top and bottom), fillings in between.
func (c *Constructor) IngredientIDs() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bun == nil {
		return nil, errors.New("an order requires a bun")
	}
	if len(c.fillings) == 0 {
		return nil, errors.New("an order requires at least one filling")
	}
	ids := make([]string, 0, len(c.fillings)+2)
	ids = append(ids, c.bun.ID)
	for _, filling := range c.fillings {
		ids = append(ids, filling.ID)
	}
	ids = append(ids, c.bun.ID)
	return ids, nil
}

// Price totals the composition: the bun twice, each filling once.
func (c *Constructor) Price() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	if c.bun != nil {
		total += c.bun.Price * 2
	}
	for _, filling := range c.fillings {
		total += filling.Price
	}
	return total
}
