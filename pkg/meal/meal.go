// Package meal defines the meal record and the repository contract used to
// store it.
package meal

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Category classifies a meal.
type Category string

const (
	CategoryMeat   Category = "MEAT"
	CategoryFish   Category = "FISH"
	CategoryVegan  Category = "VEGAN"
	CategoryVeggie Category = "VEGGIE"
)

// Meal is a priced, categorized food item.
type Meal struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    Category        `json:"mealType" enums:"MEAT,FISH,VEGAN,VEGGIE"`
	Kcal        int             `json:"kcal"`
	Price       decimal.Decimal `json:"price" swaggertype:"number"`
}

// Repository defines behavior for storing meals.
type Repository interface {
	Get(ctx context.Context, id string) (Meal, error)
	List(ctx context.Context) ([]Meal, error)
	Cheapest(ctx context.Context) (Meal, error)
	Largest(ctx context.Context) (Meal, error)
	Insert(ctx context.Context, m *Meal) (Meal, error)
	Update(ctx context.Context, id string, m *Meal) (Meal, error)
	Delete(ctx context.Context, id string) (Meal, error)
}

var (
	// ErrNotFound indicates the requested meal does not exist.
	ErrNotFound = errors.New("meal not found")
	// ErrInvalidArgument indicates a required input was absent.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptyStore is returned by aggregate queries when no meals exist.
	ErrEmptyStore = errors.New("no meals available")
)
