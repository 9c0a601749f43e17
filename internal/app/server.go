package app

import (
	"net/http"
	"time"

	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/handler"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/mw"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/pkg/metrics"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"
)

type Server struct {
	router  *mux.Router
	handler http.Handler
	limiter *mw.RL
}

func NewServer(
	userHandler *handler.UserHandler,
	messageHandler *handler.MessageHandler,
	paymentHandler *handler.PaymentHandler,
	wsHandler *handler.WSHandler,
) *Server {
	router := mux.NewRouter()

	router.Use(metrics.Middleware)

	limiter := mw.NewRateLimiter(rate.Limit(20), 40, 5*time.Minute)
	router.Use(limiter.Middleware)

	userHandler.RegisterRoutes(router)
	messageHandler.RegisterRoutes(router)
	paymentHandler.RegisterRoutes(router)
	wsHandler.RegisterRoutes(router)

	router.HandleFunc("/api/ping", handler.Ping).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
	)

	return &Server{router: router, handler: cors(router), limiter: limiter}
}

// Close releases server-owned background work, the rate limiter's GC loop.
func (s *Server) Close() {
	s.limiter.Stop()
}

func (s *Server) Run(port string) {
	srv := &http.Server{
		Handler: s.handler,
		Addr:    ":" + port,
		// Timeouts apply to plain HTTP only, websocket connections are
		// hijacked and outlive them.
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Info().Str("port", port).Msg("server starting")
	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}
