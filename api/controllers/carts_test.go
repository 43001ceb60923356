package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	cartsvc "github.com/microshop/services/internal/carts"
)

type failingChecker struct{}

func (failingChecker) Exists(context.Context, string) (bool, error) {
	return false, errors.New("connection refused")
}

func newCartMux(checker cartsvc.ProductChecker) chi.Router {
	svc := cartsvc.NewService(checker)
	r := chi.NewRouter()
	r.Route("/carts", func(r chi.Router) {
		r.Post("/", CartsCreate(svc, nil))
		r.Route("/{cartID}", func(r chi.Router) {
			r.Get("/", CartsGet(svc, nil))
			r.Delete("/", CartsClear(svc, nil))
			r.Post("/items", CartsAddItem(svc, nil))
			r.Delete("/items/{productID}", CartsRemoveItem(svc, nil))
		})
	})
	return r
}

func createCart(t *testing.T, mux http.Handler) string {
	t.Helper()
	w, body := doJSON(t, mux, http.MethodPost, "/carts/", `{"user_id":"user-1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create cart failed: %d %s", w.Code, w.Body.String())
	}
	return body["id"].(string)
}

func TestCartCreateStartsEmpty(t *testing.T) {
	mux := newCartMux(nil)

	w, body := doJSON(t, mux, http.MethodPost, "/carts/", `{"user_id":"user-1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["user_id"] != "user-1" {
		t.Fatalf("unexpected user_id %v", body["user_id"])
	}
	items, ok := body["items"].([]any)
	if !ok {
		t.Fatalf("items must serialize as an array, got %T", body["items"])
	}
	if len(items) != 0 {
		t.Fatalf("expected empty items, got %v", items)
	}
}

func TestCartAddItemDistinguishesAddAndMerge(t *testing.T) {
	mux := newCartMux(nil)
	cartID := createCart(t, mux)

	w, body := doJSON(t, mux, http.MethodPost, "/carts/"+cartID+"/items",
		`{"product_id":"p1","quantity":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["message"] != "Item added to cart" {
		t.Fatalf("unexpected message %v", body["message"])
	}

	w, body = doJSON(t, mux, http.MethodPost, "/carts/"+cartID+"/items",
		`{"product_id":"p1","quantity":3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["message"] != "Item quantity updated in cart" {
		t.Fatalf("unexpected message %v", body["message"])
	}

	_, fetched := doJSON(t, mux, http.MethodGet, "/carts/"+cartID, "")
	items := fetched["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected merged single item, got %v", items)
	}
	item := items[0].(map[string]any)
	if item["quantity"] != float64(5) {
		t.Fatalf("expected merged quantity 5, got %v", item["quantity"])
	}
}

func TestCartRemoveItemLeavesOthers(t *testing.T) {
	mux := newCartMux(nil)
	cartID := createCart(t, mux)

	doJSON(t, mux, http.MethodPost, "/carts/"+cartID+"/items", `{"product_id":"p1","quantity":1}`)
	doJSON(t, mux, http.MethodPost, "/carts/"+cartID+"/items", `{"product_id":"p2","quantity":2}`)

	w, body := doJSON(t, mux, http.MethodDelete, "/carts/"+cartID+"/items/p1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["message"] != "Item removed from cart" {
		t.Fatalf("unexpected message %v", body["message"])
	}

	_, fetched := doJSON(t, mux, http.MethodGet, "/carts/"+cartID, "")
	items := fetched["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected one remaining item, got %v", items)
	}
	if items[0].(map[string]any)["product_id"] != "p2" {
		t.Fatalf("wrong item removed: %v", items)
	}

	// Removing an id that is not present still succeeds.
	w, _ = doJSON(t, mux, http.MethodDelete, "/carts/"+cartID+"/items/ghost", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for absent product, got %d", w.Code)
	}
}

func TestCartClearKeepsRecord(t *testing.T) {
	mux := newCartMux(nil)
	cartID := createCart(t, mux)
	doJSON(t, mux, http.MethodPost, "/carts/"+cartID+"/items", `{"product_id":"p1","quantity":1}`)

	w, body := doJSON(t, mux, http.MethodDelete, "/carts/"+cartID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["message"] != "Cart cleared" {
		t.Fatalf("unexpected message %v", body["message"])
	}

	w, fetched := doJSON(t, mux, http.MethodGet, "/carts/"+cartID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("cart record must survive clear, got %d", w.Code)
	}
	if fetched["user_id"] != "user-1" {
		t.Fatalf("user_id lost on clear: %v", fetched)
	}
	if len(fetched["items"].([]any)) != 0 {
		t.Fatalf("expected empty items after clear")
	}
}

func TestCartUnknownIDReturns404Detail(t *testing.T) {
	mux := newCartMux(nil)

	paths := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/carts/missing", ""},
		{http.MethodPost, "/carts/missing/items", `{"product_id":"p1","quantity":1}`},
		{http.MethodDelete, "/carts/missing/items/p1", ""},
		{http.MethodDelete, "/carts/missing", ""},
	}
	for _, tc := range paths {
		w, body := doJSON(t, mux, tc.method, tc.path, tc.body)
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s %s: expected 404, got %d", tc.method, tc.path, w.Code)
		}
		if body["detail"] != "Cart not found" {
			t.Fatalf("%s %s: unexpected detail %v", tc.method, tc.path, body["detail"])
		}
	}
}

func TestCartAddItemValidation(t *testing.T) {
	mux := newCartMux(nil)
	cartID := createCart(t, mux)

	w, _ := doJSON(t, mux, http.MethodPost, "/carts/"+cartID+"/items", `{"product_id":"p1"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing quantity, got %d", w.Code)
	}
}

func TestCartAddItemWithUnreachableProductService(t *testing.T) {
	mux := newCartMux(failingChecker{})
	cartID := createCart(t, mux)

	req := httptest.NewRequest(http.MethodPost, "/carts/"+cartID+"/items",
		strings.NewReader(`{"product_id":"p1","quantity":1}`))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["detail"] != "Product service unavailable" {
		t.Fatalf("unexpected detail %v", body["detail"])
	}
}
