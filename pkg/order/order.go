// Package order prices transient meal orders against a meal store.
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"mealflow/pkg/meal"
)

const (
	// ConfirmationTemplate renders the default confirmation message.
	ConfirmationTemplate = "Order placed successfully! Total price: %s"
	// RPCConfirmationTemplate renders the confirmation message of the RPC-style API.
	RPCConfirmationTemplate = "Order placed successfully in RPC! Total price: %s"
)

// Order represents a request to price a set of meals for a delivery address.
type Order struct {
	Address string   `json:"address"`
	MealIDs []string `json:"mealIds"`
}

// ErrInvalidOrder indicates the order has no meal ids.
var ErrInvalidOrder = errors.New("meal ids must not be empty")

// MealNotFoundError reports a meal id in an order that the store cannot resolve.
type MealNotFoundError struct {
	ID string
}

func (e *MealNotFoundError) Error() string {
	return "could not find meal " + e.ID
}

func (e *MealNotFoundError) Unwrap() error {
	return meal.ErrNotFound
}

// MealFinder is the minimal store behavior needed to price an order.
type MealFinder interface {
	Get(ctx context.Context, id string) (meal.Meal, error)
}

// Quote is the priced result of an order.
type Quote struct {
	Total   decimal.Decimal
	Message string
}

// Format renders the total, rounded to two places, into tmpl.
func (q Quote) Format(tmpl string) string {
	return fmt.Sprintf(tmpl, q.Total.StringFixed(2))
}

// Price sums the price of every meal id in order. Repeated ids are charged
// once per occurrence. The first id that cannot be resolved fails the whole
// order.
func Price(ctx context.Context, meals MealFinder, mealIDs []string) (Quote, error) {
	if len(mealIDs) == 0 {
		return Quote{}, ErrInvalidOrder
	}

	total := decimal.Zero
	for _, id := range mealIDs {
		m, err := meals.Get(ctx, id)
		if err != nil {
			if errors.Is(err, meal.ErrNotFound) {
				return Quote{}, &MealNotFoundError{ID: id}
			}
			return Quote{}, fmt.Errorf("resolve meal %s: %w", id, err)
		}
		total = total.Add(m.Price)
	}

	q := Quote{Total: total}
	q.Message = q.Format(ConfirmationTemplate)
	return q, nil
}
