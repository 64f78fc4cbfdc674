// Package memory implements an in-memory meal repository.
package memory

import (
	"context"
	"sort"
	"sync"

	"mealflow/pkg/meal"
)

// Repository provides an in-memory implementation of meal.Repository.
type Repository struct {
	mu    sync.RWMutex
	meals map[string]meal.Meal
}

var _ meal.Repository = (*Repository)(nil)

// New creates a new in-memory repository holding the given meals.
func New(seed ...meal.Meal) *Repository {
	r := &Repository{meals: make(map[string]meal.Meal, len(seed))}
	for _, m := range seed {
		r.meals[m.ID] = m
	}
	return r
}

// Get retrieves a meal by ID.
func (r *Repository) Get(ctx context.Context, id string) (meal.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.meals[id]
	if !ok {
		return meal.Meal{}, meal.ErrNotFound
	}
	return m, nil
}

// List returns all meals ordered by ID.
func (r *Repository) List(ctx context.Context) ([]meal.Meal, error) {
	r.mu.RLock()
	out := make([]meal.Meal, 0, len(r.meals))
	for _, m := range r.meals {
		out = append(out, m)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Cheapest returns the meal with the lowest price. Ties go to the lowest ID.
func (r *Repository) Cheapest(ctx context.Context) (meal.Meal, error) {
	return r.pick(func(a, b meal.Meal) int { return a.Price.Cmp(b.Price) })
}

// Largest returns the meal with the most kcal. Ties go to the lowest ID.
func (r *Repository) Largest(ctx context.Context) (meal.Meal, error) {
	return r.pick(func(a, b meal.Meal) int { return b.Kcal - a.Kcal })
}

// pick scans every meal once and keeps the one ranked first by cmp.
func (r *Repository) pick(cmp func(a, b meal.Meal) int) (meal.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		best  meal.Meal
		found bool
	)
	for _, m := range r.meals {
		if !found {
			best, found = m, true
			continue
		}
		c := cmp(m, best)
		if c < 0 || (c == 0 && m.ID < best.ID) {
			best = m
		}
	}
	if !found {
		return meal.Meal{}, meal.ErrEmptyStore
	}
	return best, nil
}

// Insert stores the meal, overwriting any meal with the same ID.
func (r *Repository) Insert(ctx context.Context, m *meal.Meal) (meal.Meal, error) {
	if m == nil || m.ID == "" {
		return meal.Meal{}, meal.ErrInvalidArgument
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meals[m.ID] = *m
	return *m, nil
}

// Update replaces an existing meal. The stored record takes the given id
// whatever m.ID says.
func (r *Repository) Update(ctx context.Context, id string, m *meal.Meal) (meal.Meal, error) {
	if id == "" || m == nil {
		return meal.Meal{}, meal.ErrInvalidArgument
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.meals[id]; !ok {
		return meal.Meal{}, meal.ErrNotFound
	}
	updated := *m
	updated.ID = id
	r.meals[id] = updated
	return updated, nil
}

// Delete removes a meal by ID and returns what was stored.
func (r *Repository) Delete(ctx context.Context, id string) (meal.Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.meals[id]
	if !ok {
		return meal.Meal{}, meal.ErrNotFound
	}
	delete(r.meals, id)
	return m, nil
}
