package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns middleware with the services' shared origin policy. The
// storefront runs on localhost during development; deployments front these
// services with a gateway that owns the public policy.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler
}
