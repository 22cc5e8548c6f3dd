package storefront

// IngredientType classifies catalog entries. Buns occupy a special position
// in a composed order-- one bun, counted twice (top and bottom).
type IngredientType string

const (
	IngredientTypeBun   IngredientType = "bun"
	IngredientTypeSauce IngredientType = "sauce"
	IngredientTypeMain  IngredientType = "main"
)

type Ingredient struct {
	ID            string         `json:"_id"`
	Name          string         `json:"name"`
	Type          IngredientType `json:"type"`
	Proteins      int            `json:"proteins"`
	Fat           int            `json:"fat"`
	Carbohydrates int            `json:"carbohydrates"`
	Calories      int            `json:"calories"`
	Price         int            `json:"price"`
	Image         string         `json:"image"`
	ImageMobile   string         `json:"image_mobile"`
	ImageLarge    string         `json:"image_large"`
}
