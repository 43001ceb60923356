package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/microshop/services/api/responses"
	"github.com/microshop/services/api/validators"
	ordersvc "github.com/microshop/services/internal/orders"
	"github.com/microshop/services/pkg/enums"
	pkgerrors "github.com/microshop/services/pkg/errors"
	"github.com/microshop/services/pkg/logger"
)

type orderCreateRequest struct {
	UserID string `json:"user_id" validate:"required"`
	CartID string `json:"cart_id" validate:"required"`
}

func OrdersCreate(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload orderCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Create(r.Context(), payload.UserID, payload.CartID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteData(w, order)
	}
}

func OrdersList(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := validators.OptionalQuery(r, "user_id")
		listed, err := svc.List(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, listed)
	}
}

func OrdersGet(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := svc.Get(r.Context(), orderIDParam(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, order)
	}
}

// OrdersUpdateStatus validates the status value at the boundary; the service
// itself applies any valid value without a transition graph.
func OrdersUpdateStatus(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := validators.RequireQuery(r, "status")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		status, err := enums.ParseOrderStatus(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status value"))
			return
		}

		if err := svc.UpdateStatus(r.Context(), orderIDParam(r), status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, fmt.Sprintf("Order status updated to %s", status))
	}
}

func orderIDParam(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "orderID"))
}
