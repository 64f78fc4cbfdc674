// Package api exposes the meal store and order pricing over HTTP in two
// styles: a hypermedia API under /rest whose meals carry navigation links, and
// a plain RPC-style API under /restrpc returning bare records.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	_ "mealflow/docs"
	"mealflow/pkg/logger"
	"mealflow/pkg/meal"
)

// Handler serves the meal endpoints.
type Handler struct {
	meals   meal.Repository
	log     *logger.Logger
	service string
	router  *mux.Router
}

// New returns a Handler backed by the given store.
func New(meals meal.Repository, log *logger.Logger, serviceName string) *Handler {
	return &Handler{
		meals:   meals,
		log:     log,
		service: serviceName,
	}
}

// RegisterRoutes mounts every endpoint on r. Link building resolves named
// routes through r.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	h.router = r

	r.HandleFunc("/health", h.health).Methods(http.MethodGet)

	rest := r.PathPrefix("/rest").Subrouter()
	rest.HandleFunc("/meals", h.restListMeals).Methods(http.MethodGet).Name(routeRESTMeals)
	rest.HandleFunc("/meals", h.restCreateMeal).Methods(http.MethodPost)
	rest.HandleFunc("/meals/cheapest", h.restCheapestMeal).Methods(http.MethodGet)
	rest.HandleFunc("/meals/largest", h.restLargestMeal).Methods(http.MethodGet)
	rest.HandleFunc("/meals/{id}", h.restGetMeal).Methods(http.MethodGet).Name(routeRESTMeal)
	rest.HandleFunc("/meals/{id}", h.restUpdateMeal).Methods(http.MethodPut)
	rest.HandleFunc("/meals/{id}", h.restDeleteMeal).Methods(http.MethodDelete)
	rest.HandleFunc("/orders", h.restPlaceOrder).Methods(http.MethodPost)

	rpc := r.PathPrefix("/restrpc").Subrouter()
	rpc.HandleFunc("/meals", h.rpcListMeals).Methods(http.MethodGet)
	rpc.HandleFunc("/meals", h.rpcCreateMeal).Methods(http.MethodPost)
	rpc.HandleFunc("/meals/cheapest", h.rpcCheapestMeal).Methods(http.MethodGet)
	rpc.HandleFunc("/meals/largest", h.rpcLargestMeal).Methods(http.MethodGet)
	rpc.HandleFunc("/meals/{id}", h.rpcGetMeal).Methods(http.MethodGet)
	rpc.HandleFunc("/meals/{id}", h.rpcUpdateMeal).Methods(http.MethodPut)
	rpc.HandleFunc("/meals/{id}", h.rpcDeleteMeal).Methods(http.MethodDelete)
	rpc.HandleFunc("/orders", h.rpcPlaceOrder).Methods(http.MethodPost)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
}

// NewRouter builds the complete HTTP handler: routes, CORS, request logging
// and tracing.
func NewRouter(h *Handler, tracer trace.Tracer, corsOrigins []string) http.Handler {
	r := mux.NewRouter()
	h.RegisterRoutes(r)

	c := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Location"},
	})

	return traceMiddleware(tracer, requestLogger(h.log, c.Handler(r)))
}

// decodeMeal reads a meal from the request body. A JSON null body yields a nil
// meal, which the store rejects.
func decodeMeal(w http.ResponseWriter, r *http.Request) (*meal.Meal, bool) {
	var m *meal.Meal
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return nil, false
	}
	return m, true
}

// insertMeal stores m, assigning a fresh id when the caller sent none.
func (h *Handler) insertMeal(ctx context.Context, m *meal.Meal) (meal.Meal, error) {
	if m != nil && m.ID == "" {
		m.ID = uuid.NewString()
	}
	return h.meals.Insert(ctx, m)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
