package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/microshop/services/api/responses"
	"github.com/microshop/services/api/validators"
	cartsvc "github.com/microshop/services/internal/carts"
	"github.com/microshop/services/pkg/logger"
)

type cartCreateRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type cartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"required"`
}

func CartsCreate(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.Create(r.Context(), payload.UserID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteData(w, cart)
	}
}

func CartsGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cart, err := svc.Get(r.Context(), cartIDParam(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, cart)
	}
}

// CartsAddItem merges quantities when the product is already in the cart and
// appends otherwise; the two outcomes answer with distinct messages.
func CartsAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item := cartsvc.CartItem{ProductID: payload.ProductID, Quantity: *payload.Quantity}
		outcome, err := svc.AddItem(r.Context(), cartIDParam(r), item)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if outcome == cartsvc.OutcomeMerged {
			responses.WriteMessage(w, "Item quantity updated in cart")
			return
		}
		responses.WriteMessage(w, "Item added to cart")
	}
}

func CartsRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := strings.TrimSpace(chi.URLParam(r, "productID"))
		if err := svc.RemoveItem(r.Context(), cartIDParam(r), productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "Item removed from cart")
	}
}

// CartsClear resets the item list; the cart record itself survives.
func CartsClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Clear(r.Context(), cartIDParam(r)); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "Cart cleared")
	}
}

func cartIDParam(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "cartID"))
}
