package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/microshop/services/pkg/errors"
	"github.com/microshop/services/pkg/logger"
)

// ErrorBody is the client-facing error shape. Detail carries the fixed
// per-entity message for domain errors.
type ErrorBody struct {
	Detail string `json:"detail"`
	Errors any    `json:"errors,omitempty"`
}

// WriteData writes the payload as-is with status 200. Records and lists go
// over the wire unwrapped.
func WriteData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}

// WriteMessage writes a fixed confirmation message.
func WriteMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	detail := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeValidation, pkgerrors.CodeNotFound, pkgerrors.CodeDependency:
		if m := typed.Message(); m != "" {
			detail = m
		}
	}

	body := ErrorBody{Detail: detail}
	if meta.DetailsAllowed {
		body.Errors = typed.Details()
	}

	if logg != nil {
		ctx = logg.WithFields(ctx, map[string]any{
			"error_code":  string(typed.Code()),
			"http_status": meta.HTTPStatus,
		})
		logg.Error(ctx, "request.error", err)
	}

	writeJSON(w, meta.HTTPStatus, body)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
