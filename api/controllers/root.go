package controllers

import (
	"net/http"

	"github.com/microshop/services/api/responses"
)

// Root returns each service's fixed greeting, independent of table state.
func Root(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteMessage(w, message)
	}
}

func Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteData(w, map[string]string{"status": "ok"})
	}
}
