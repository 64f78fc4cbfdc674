package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealflow/pkg/meal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New()
	m := meal.Meal{ID: "1", Name: "Soup", Category: meal.CategoryVeggie, Kcal: 300, Price: price("4.50")}
	if _, err := repo.Insert(ctx, &m); err != nil {
		t.Fatalf("insert: %v", err)
	}
	got, err := repo.Get(ctx, "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Soup" {
		t.Fatalf("expected Soup, got %s", got.Name)
	}
	m.Name = "Stew"
	if _, err := repo.Update(ctx, "1", &m); err != nil {
		t.Fatalf("update: %v", err)
	}
	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}
	if list[0].Name != "Stew" {
		t.Fatalf("expected Stew, got %s", list[0].Name)
	}
	if _, err := repo.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "1"); err != meal.ErrNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestInsertUpserts(t *testing.T) {
	ctx := context.Background()
	repo := New()

	first := meal.Meal{ID: "a", Name: "First", Price: price("1")}
	second := meal.Meal{ID: "a", Name: "Second", Price: price("2")}
	_, err := repo.Insert(ctx, &first)
	require.NoError(t, err)
	stored, err := repo.Insert(ctx, &second)
	require.NoError(t, err)
	assert.Equal(t, "Second", stored.Name)

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, second, got)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestInsertRejectsAbsentInput(t *testing.T) {
	ctx := context.Background()
	repo := New()

	_, err := repo.Insert(ctx, nil)
	assert.ErrorIs(t, err, meal.ErrInvalidArgument)

	_, err = repo.Insert(ctx, &meal.Meal{Name: "no id"})
	assert.ErrorIs(t, err, meal.ErrInvalidArgument)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("absent id does not create", func(t *testing.T) {
		repo := New()
		_, err := repo.Update(ctx, "ghost", &meal.Meal{Name: "Ghost"})
		assert.ErrorIs(t, err, meal.ErrNotFound)

		_, err = repo.Get(ctx, "ghost")
		assert.ErrorIs(t, err, meal.ErrNotFound)
	})

	t.Run("forces the path id", func(t *testing.T) {
		repo := New(meal.Meal{ID: "orig", Name: "Old", Kcal: 10, Price: price("1")})
		replacement := meal.Meal{ID: "other", Name: "New", Kcal: 20, Price: price("2")}

		updated, err := repo.Update(ctx, "orig", &replacement)
		require.NoError(t, err)
		assert.Equal(t, "orig", updated.ID)

		got, err := repo.Get(ctx, "orig")
		require.NoError(t, err)
		want := replacement
		want.ID = "orig"
		assert.Equal(t, want, got)

		_, err = repo.Get(ctx, "other")
		assert.ErrorIs(t, err, meal.ErrNotFound)
	})

	t.Run("absent arguments", func(t *testing.T) {
		repo := New(meal.Meal{ID: "x"})
		_, err := repo.Update(ctx, "", &meal.Meal{})
		assert.ErrorIs(t, err, meal.ErrInvalidArgument)
		_, err = repo.Update(ctx, "x", nil)
		assert.ErrorIs(t, err, meal.ErrInvalidArgument)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := New(meal.Meal{ID: "x", Name: "Toast"})

	removed, err := repo.Delete(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "Toast", removed.Name)

	_, err = repo.Delete(ctx, "x")
	assert.ErrorIs(t, err, meal.ErrNotFound)
}

func TestAggregates(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		meals        []meal.Meal
		wantCheapest string
		wantLargest  string
	}{
		{
			name: "distinct values",
			meals: []meal.Meal{
				{ID: "a", Kcal: 100, Price: price("3.00")},
				{ID: "b", Kcal: 900, Price: price("2.99")},
			},
			wantCheapest: "b",
			wantLargest:  "b",
		},
		{
			name: "single meal",
			meals: []meal.Meal{
				{ID: "only", Kcal: 1, Price: price("0")},
			},
			wantCheapest: "only",
			wantLargest:  "only",
		},
		{
			name: "ties resolve to lowest id",
			meals: []meal.Meal{
				{ID: "c", Kcal: 500, Price: price("5")},
				{ID: "b", Kcal: 500, Price: price("5.00")},
				{ID: "d", Kcal: 400, Price: price("6")},
			},
			wantCheapest: "b",
			wantLargest:  "b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := New(tt.meals...)

			cheapest, err := repo.Cheapest(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCheapest, cheapest.ID)

			largest, err := repo.Largest(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLargest, largest.ID)
		})
	}
}

func TestAggregatesOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	repo := New()

	_, err := repo.Cheapest(ctx)
	assert.ErrorIs(t, err, meal.ErrEmptyStore)
	_, err = repo.Largest(ctx)
	assert.ErrorIs(t, err, meal.ErrEmptyStore)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	repo := New(meal.Seed()...)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	cheapest, err := repo.Cheapest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Fish and Chips", cheapest.Name)
	assert.True(t, cheapest.Price.Equal(price("5")))

	largest, err := repo.Largest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Steak", largest.Name)
	assert.Equal(t, 1100, largest.Kcal)

	portobello, err := repo.Get(ctx, "4237681a-441f-47fc-a747-8e0169bacea1")
	require.NoError(t, err)
	assert.Equal(t, meal.CategoryVegan, portobello.Category)
}

func TestConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	repo := New()

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m := meal.Meal{ID: fmt.Sprintf("meal-%03d", i), Kcal: i, Price: decimal.NewFromInt(int64(i))}
			_, _ = repo.Insert(ctx, &m)
			_, _ = repo.Cheapest(ctx)
			_, _ = repo.List(ctx)
		}(i)
	}
	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, writers)

	for i := 0; i < writers; i += 2 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = repo.Delete(ctx, fmt.Sprintf("meal-%03d", i))
		}(i)
	}
	wg.Wait()

	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, writers/2)

	cheapest, err := repo.Cheapest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "meal-001", cheapest.ID)
	largest, err := repo.Largest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "meal-049", largest.ID)
}
