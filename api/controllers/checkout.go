package controllers

import (
	"net/http"

	"github.com/foodieexpress/foodieexpress-backend/api/responses"
	"github.com/foodieexpress/foodieexpress-backend/api/validators"
	"github.com/foodieexpress/foodieexpress-backend/internal/checkout"
	"github.com/foodieexpress/foodieexpress-backend/internal/orders"
	pkgerrors "github.com/foodieexpress/foodieexpress-backend/pkg/errors"
	"github.com/foodieexpress/foodieexpress-backend/pkg/logger"
)

type CheckoutRequest struct {
	FullName            string `json:"fullName" validate:"required,min=2"`
	Phone               string `json:"phone" validate:"required,min=10"`
	Email               string `json:"email" validate:"required,email"`
	Address             string `json:"address" validate:"required,min=10"`
	City                string `json:"city" validate:"required,min=2"`
	PostalCode          string `json:"postalCode" validate:"required,min=6"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// CheckoutSubmit turns the current cart into an order.
func CheckoutSubmit(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var body CheckoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rec, err := svc.Submit(r.Context(), orders.DeliveryDetails{
			FullName:            body.FullName,
			Phone:               body.Phone,
			Email:               body.Email,
			Address:             body.Address,
			City:                body.City,
			PostalCode:          body.PostalCode,
			SpecialInstructions: body.SpecialInstructions,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{"order": rec})
	}
}
