package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foodieexpress/foodieexpress-backend/api/responses"
	"github.com/foodieexpress/foodieexpress-backend/api/validators"
	"github.com/foodieexpress/foodieexpress-backend/internal/cart"
	"github.com/foodieexpress/foodieexpress-backend/internal/catalog"
	pkgerrors "github.com/foodieexpress/foodieexpress-backend/pkg/errors"
	"github.com/foodieexpress/foodieexpress-backend/pkg/logger"
)

type CartAddRequest struct {
	ItemID string `json:"itemId" validate:"required"`
}

type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartFetch returns the cart lines and the derived totals in one snapshot.
func CartFetch(carts *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if carts == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		lines, totals := carts.Snapshot()
		if lines == nil {
			lines = []cart.Line{}
		}
		responses.WriteSuccess(w, map[string]any{"items": lines, "totals": totals})
	}
}

// CartAddItem adds one unit of a catalog item to the cart.
func CartAddItem(carts *cart.Store, cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if carts == nil || cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		var body CartAddRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, ok := cat.ItemByID(body.ItemID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found"))
			return
		}

		if err := carts.AddItem(r.Context(), item); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines, totals := carts.Snapshot()
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{"items": lines, "totals": totals})
	}
}

// CartUpdateQuantity sets the quantity for a cart line. Zero removes it.
func CartUpdateQuantity(carts *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if carts == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		var body CartQuantityRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		itemID := chi.URLParam(r, "itemId")
		if err := carts.UpdateQuantity(r.Context(), itemID, body.Quantity); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines, totals := carts.Snapshot()
		if lines == nil {
			lines = []cart.Line{}
		}
		responses.WriteSuccess(w, map[string]any{"items": lines, "totals": totals})
	}
}

// CartRemoveItem removes a line. Removing an absent item still succeeds.
func CartRemoveItem(carts *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if carts == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		itemID := chi.URLParam(r, "itemId")
		if err := carts.RemoveItem(r.Context(), itemID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines, totals := carts.Snapshot()
		if lines == nil {
			lines = []cart.Line{}
		}
		responses.WriteSuccess(w, map[string]any{"items": lines, "totals": totals})
	}
}

// CartClear empties the cart.
func CartClear(carts *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if carts == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		if err := carts.Clear(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"items": []cart.Line{}, "totals": carts.Totals()})
	}
}
