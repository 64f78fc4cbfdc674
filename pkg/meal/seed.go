package meal

import "github.com/shopspring/decimal"

// Seed returns the meals the service starts with.
func Seed() []Meal {
	return []Meal{
		{
			ID:          "5268203c-de76-4921-a3e3-439db69c462a",
			Name:        "Steak",
			Description: "Steak with fries",
			Category:    CategoryMeat,
			Kcal:        1100,
			Price:       decimal.RequireFromString("10.00"),
		},
		{
			ID:          "4237681a-441f-47fc-a747-8e0169bacea1",
			Name:        "Portobello",
			Description: "Portobello Mushroom Burger",
			Category:    CategoryVegan,
			Kcal:        637,
			Price:       decimal.RequireFromString("7.00"),
		},
		{
			ID:          "cfd1601f-29a0-485d-8d21-7607ec0340c8",
			Name:        "Fish and Chips",
			Description: "Fried fish with chips",
			Category:    CategoryFish,
			Kcal:        950,
			Price:       decimal.RequireFromString("5.00"),
		},
	}
}
