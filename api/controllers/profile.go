package controllers

import (
	"net/http"

	"github.com/foodieexpress/foodieexpress-backend/api/responses"
	"github.com/foodieexpress/foodieexpress-backend/api/validators"
	"github.com/foodieexpress/foodieexpress-backend/internal/session"
	pkgerrors "github.com/foodieexpress/foodieexpress-backend/pkg/errors"
	"github.com/foodieexpress/foodieexpress-backend/pkg/logger"
)

type ProfileUpdateRequest struct {
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	FullName   *string `json:"fullName,omitempty" validate:"omitempty,min=2"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,min=10"`
	Address    *string `json:"address,omitempty" validate:"omitempty,min=10"`
	City       *string `json:"city,omitempty" validate:"omitempty,min=2"`
	PostalCode *string `json:"postalCode,omitempty" validate:"omitempty,min=6"`
}

// ProfileGet returns the active identity.
func ProfileGet(sessions *session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session store unavailable"))
			return
		}

		identity, state, active := sessions.Current()
		if !active {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"user": identity, "state": state})
	}
}

// ProfileUpdate merges the supplied fields into the active identity.
func ProfileUpdate(sessions *session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session store unavailable"))
			return
		}

		var body ProfileUpdateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		identity, ok, err := sessions.UpdateProfile(r.Context(), session.ProfileUpdate{
			Email:      body.Email,
			FullName:   body.FullName,
			Phone:      body.Phone,
			Address:    body.Address,
			City:       body.City,
			PostalCode: body.PostalCode,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"user": identity})
	}
}
