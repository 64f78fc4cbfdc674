package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"

	"mealflow/pkg/meal"
	"mealflow/pkg/order"
	"mealflow/pkg/otel"
)

const (
	routeRESTMeal  = "rest.meal"
	routeRESTMeals = "rest.meals"

	relSelf  = "self"
	relMeals = "rest/meals"
)

type link struct {
	Href string `json:"href"`
}

// mealModel is a meal with its navigation links.
type mealModel struct {
	meal.Meal
	Links map[string]link `json:"_links"`
}

// mealCollection lists meal models together with a link to itself.
type mealCollection struct {
	Embedded *embeddedMeals  `json:"_embedded,omitempty"`
	Links    map[string]link `json:"_links"`
}

type embeddedMeals struct {
	Meals []mealModel `json:"mealList"`
}

// href builds an absolute URL for a named route, using the scheme and host the
// request arrived on.
func (h *Handler) href(r *http.Request, name string, pairs ...string) string {
	route := h.router.Get(name)
	if route == nil {
		return ""
	}
	u, err := route.URL(pairs...)
	if err != nil {
		return ""
	}
	u.Scheme = "http"
	if r.TLS != nil {
		u.Scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		u.Scheme = proto
	}
	u.Host = r.Host
	return u.String()
}

func (h *Handler) toModel(r *http.Request, m meal.Meal) mealModel {
	return mealModel{
		Meal: m,
		Links: map[string]link{
			relSelf:  {Href: h.href(r, routeRESTMeal, "id", m.ID)},
			relMeals: {Href: h.href(r, routeRESTMeals)},
		},
	}
}

// restGetMeal retrieves a meal with its links.
// @Summary Get meal
// @Tags rest
// @Produce json
// @Param id path string true "Meal ID"
// @Success 200 {object} mealModel
// @Failure 404 {object} errorResponse
// @Router /rest/meals/{id} [get]
func (h *Handler) restGetMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "rest.getMeal")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("meal.id", id))
	m, err := h.meals.Get(ctx, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toModel(r, m))
}

// restListMeals lists every meal with links.
// @Summary List meals
// @Tags rest
// @Produce json
// @Success 200 {object} mealCollection
// @Router /rest/meals [get]
func (h *Handler) restListMeals(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "rest.listMeals")
	defer span.End()

	meals, err := h.meals.List(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out := mealCollection{
		Links: map[string]link{relSelf: {Href: h.href(r, routeRESTMeals)}},
	}
	if len(meals) > 0 {
		out.Embedded = &embeddedMeals{Meals: make([]mealModel, 0, len(meals))}
		for _, m := range meals {
			out.Embedded.Meals = append(out.Embedded.Meals, h.toModel(r, m))
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// restCheapestMeal returns the lowest priced meal.
// @Summary Cheapest meal
// @Tags rest
// @Produce json
// @Success 200 {object} mealModel
// @Failure 500 {object} errorResponse
// @Router /rest/meals/cheapest [get]
func (h *Handler) restCheapestMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "rest.cheapestMeal")
	defer span.End()

	m, err := h.meals.Cheapest(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toModel(r, m))
}

// restLargestMeal returns the meal with the most kcal.
// @Summary Largest meal
// @Tags rest
// @Produce json
// @Success 200 {object} mealModel
// @Failure 500 {object} errorResponse
// @Router /rest/meals/largest [get]
func (h *Handler) restLargestMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "rest.largestMeal")
	defer span.End()

	m, err := h.meals.Largest(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toModel(r, m))
}

// restCreateMeal stores a meal, generating an id when none is given.
// @Summary Create meal
// @Tags rest
// @Accept json
// @Produce json
// @Param meal body meal.Meal true "Meal"
// @Success 201 {object} mealModel
// @Failure 400 {object} errorResponse
// @Router /rest/meals [post]
func (h *Handler) restCreateMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "rest.createMeal")
	defer span.End()

	in, ok := decodeMeal(w, r)
	if !ok {
		return
	}
	m, err := h.insertMeal(ctx, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	model := h.toModel(r, m)
	w.Header().Set("Location", model.Links[relSelf].Href)
	writeJSON(w, http.StatusCreated, model)
}

// restUpdateMeal replaces an existing meal.
// @Summary Update meal
// @Tags rest
// @Accept json
// @Produce json
// @Param id path string true "Meal ID"
// @Param meal body meal.Meal true "Meal"
// @Success 200 {object} mealModel
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /rest/meals/{id} [put]
func (h *Handler) restUpdateMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "rest.updateMeal")
	defer span.End()

	in, ok := decodeMeal(w, r)
	if !ok {
		return
	}
	m, err := h.meals.Update(ctx, mux.Vars(r)["id"], in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toModel(r, m))
}

// restDeleteMeal removes a meal.
// @Summary Delete meal
// @Tags rest
// @Param id path string true "Meal ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /rest/meals/{id} [delete]
func (h *Handler) restDeleteMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "rest.deleteMeal")
	defer span.End()

	if _, err := h.meals.Delete(ctx, mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// restPlaceOrder prices an order and confirms it.
// @Summary Place order
// @Tags rest
// @Accept json
// @Produce plain
// @Param order body order.Order true "Order"
// @Success 201 {string} string
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /rest/orders [post]
func (h *Handler) restPlaceOrder(w http.ResponseWriter, r *http.Request) {
	h.placeOrder(w, r, "rest.placeOrder", order.ConfirmationTemplate)
}
