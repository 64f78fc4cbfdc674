package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"mealflow/pkg/meal"
	"mealflow/pkg/order"
	"mealflow/pkg/otel"
)

// rpcGetMeal retrieves a meal.
// @Summary Get meal
// @Tags rpc
// @Produce json
// @Param id path string true "Meal ID"
// @Success 200 {object} meal.Meal
// @Failure 404 {object} errorResponse
// @Router /restrpc/meals/{id} [get]
func (h *Handler) rpcGetMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "rpc.getMeal")
	defer span.End()

	m, err := h.meals.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// rpcListMeals lists every meal.
// @Summary List meals
// @Tags rpc
// @Produce json
// @Success 200 {array} meal.Meal
// @Router /restrpc/meals [get]
func (h *Handler) rpcListMeals(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "rpc.listMeals")
	defer span.End()

	meals, err := h.meals.List(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if meals == nil {
		meals = []meal.Meal{}
	}
	writeJSON(w, http.StatusOK, meals)
}

// @Summary Cheapest meal
// @Tags rpc
// @Produce json
// @Success 200 {object} meal.Meal
// @Failure 500 {object} errorResponse
// @Router /restrpc/meals/cheapest [get]
func (h *Handler) rpcCheapestMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "rpc.cheapestMeal")
	defer span.End()

	m, err := h.meals.Cheapest(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// @Summary Largest meal
// @Tags rpc
// @Produce json
// @Success 200 {object} meal.Meal
// @Failure 500 {object} errorResponse
// @Router /restrpc/meals/largest [get]
func (h *Handler) rpcLargestMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "rpc.largestMeal")
	defer span.End()

	m, err := h.meals.Largest(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// rpcCreateMeal stores a meal.
// @Summary Create meal
// @Tags rpc
// @Accept json
// @Produce json
// @Param meal body meal.Meal true "Meal"
// @Success 201 {object} meal.Meal
// @Failure 400 {object} errorResponse
// @Router /restrpc/meals [post]
func (h *Handler) rpcCreateMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "rpc.createMeal")
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
	writeJSON(w, http.StatusCreated, m)
}

// rpcUpdateMeal replaces an existing meal.
// @Summary Update meal
// @Tags rpc
// @Accept json
// @Produce json
// @Param id path string true "Meal ID"
// @Param meal body meal.Meal true "Meal"
// @Success 200 {object} meal.Meal
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /restrpc/meals/{id} [put]
func (h *Handler) rpcUpdateMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "rpc.updateMeal")
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
	writeJSON(w, http.StatusOK, m)
}

// @Summary Delete meal
// @Tags rpc
// @Param id path string true "Meal ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /restrpc/meals/{id} [delete]
func (h *Handler) rpcDeleteMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "rpc.deleteMeal")
	defer span.End()

	if _, err := h.meals.Delete(ctx, mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// rpcPlaceOrder prices an order and confirms it.
// @Summary Place order
// @Tags rpc
// @Accept json
// @Produce plain
// @Param order body order.Order true "Order"
// @Success 201 {string} string
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /restrpc/orders [post]
func (h *Handler) rpcPlaceOrder(w http.ResponseWriter, r *http.Request) {
	h.placeOrder(w, r, "rpc.placeOrder", order.RPCConfirmationTemplate)
}

// placeOrder prices the order in the body and writes the confirmation built
// from tmpl as plain text.
func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request, spanName, tmpl string) {
	ctx, span := otel.AddSpan(r.Context(), spanName)
	defer span.End()

	var o order.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}

	q, err := order.Price(ctx, h.meals, o.MealIDs)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.log.Info(ctx, "order priced", "meals", len(o.MealIDs), "total", q.Total.StringFixed(2))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte(q.Format(tmpl)))
}
