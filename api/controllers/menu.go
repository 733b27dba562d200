package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/foodieexpress/foodieexpress-backend/api/responses"
	"github.com/foodieexpress/foodieexpress-backend/internal/catalog"
	pkgerrors "github.com/foodieexpress/foodieexpress-backend/pkg/errors"
	"github.com/foodieexpress/foodieexpress-backend/pkg/logger"
)

// MenuList serves the menu, optionally filtered by category or to featured
// items only.
func MenuList(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		items := cat.Items()
		if category := r.URL.Query().Get("category"); category != "" {
			items = cat.ItemsByCategory(category)
		}
		if featured, _ := strconv.ParseBool(r.URL.Query().Get("featured")); featured {
			filtered := items[:0:0]
			for _, item := range items {
				if item.Featured {
					filtered = append(filtered, item)
				}
			}
			items = filtered
		}
		if items == nil {
			items = []catalog.MenuItem{}
		}

		responses.WriteSuccess(w, map[string]any{"items": items})
	}
}

func MenuCategories(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"categories": cat.Categories()})
	}
}

func MenuItem(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		itemID := chi.URLParam(r, "itemId")
		item, ok := cat.ItemByID(itemID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"item": item})
	}
}
