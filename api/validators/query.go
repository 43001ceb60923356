package validators

import (
	"net/http"
	"strings"

	pkgerrors "github.com/microshop/services/pkg/errors"
)

// OptionalQuery returns the trimmed query value, empty when absent.
func OptionalQuery(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// RequireQuery returns the trimmed query value or a validation error.
func RequireQuery(r *http.Request, key string) (string, error) {
	value := OptionalQuery(r, key)
	if value == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "missing query parameter").
			WithDetails(map[string]any{"field": key})
	}
	return value, nil
}
