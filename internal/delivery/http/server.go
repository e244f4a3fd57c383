package http

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/LavaJover/shvark-exchange-service/internal/delivery/http/handlers"
	ratelimit "github.com/LavaJover/shvark-exchange-service/internal/delivery/http/middleware"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/metrics"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	Router *chi.Mux
}

type Deps struct {
	Orders     *handlers.OrderHandler
	Rates      *handlers.RateHandler
	Admin      *handlers.AdminHandler
	Limiter    *ratelimit.Limiter
	Metrics    *metrics.OrderMetrics
	AdminToken string
}

func NewServer(deps Deps) *Server {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Logger)
	r.Use(cors)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/rates", deps.Rates.ListRates)
	r.Get("/rates/estimate", deps.Rates.Estimate)

	r.Route("/orders", func(r chi.Router) {
		r.With(throttle(deps.Limiter, deps.Metrics)).Post("/", deps.Orders.CreateOrder)
		r.Get("/{publicId}", deps.Orders.GetOrder)
		r.Patch("/{publicId}/txid", deps.Orders.SubmitTxid)
		r.Patch("/{publicId}/payout", deps.Orders.UpdatePayout)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(adminAuth(deps.AdminToken))
		r.Get("/orders", deps.Admin.ListOrders)
		r.Get("/orders/{id}", deps.Admin.GetOrder)
		r.Patch("/orders/{id}", deps.Admin.PatchOrder)
		r.Get("/addresses", deps.Admin.ListAddresses)
		r.Post("/addresses", deps.Admin.AddAddresses)
		r.Delete("/addresses", deps.Admin.DeleteAddress)
		r.Get("/rates", deps.Admin.ListRates)
		r.Post("/rates", deps.Admin.CreateRate)
		r.Patch("/rates", deps.Admin.UpdateRate)
		r.Delete("/rates", deps.Admin.DeleteRate)
		r.Get("/settings", deps.Admin.GetSettings)
		r.Put("/settings", deps.Admin.UpdateSettings)
	})

	return &Server{Router: r}
}

// throttle rejects order creation past the per-IP fixed window. Only the
// creation route carries it; reads and token-gated updates pass freely.
func throttle(limiter *ratelimit.Limiter, m *metrics.OrderMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(handlers.ClientIP(r)) {
				m.RecordThrottled()
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "Too many requests. Please wait."})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func adminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplied := r.Header.Get("X-Admin-Token")
			if token == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized."})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Admin-Token")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
