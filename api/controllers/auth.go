package controllers

import (
	"net/http"
	"time"

	"github.com/foodieexpress/foodieexpress-backend/api/responses"
	"github.com/foodieexpress/foodieexpress-backend/api/validators"
	"github.com/foodieexpress/foodieexpress-backend/internal/session"
	pkgauth "github.com/foodieexpress/foodieexpress-backend/pkg/auth"
	"github.com/foodieexpress/foodieexpress-backend/pkg/config"
	pkgerrors "github.com/foodieexpress/foodieexpress-backend/pkg/errors"
	"github.com/foodieexpress/foodieexpress-backend/pkg/logger"
)

const tokenHeader = "X-Foodie-Token"

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required,min=2"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthSignup registers an account and activates the session.
func AuthSignup(sessions *session.Store, cfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session store unavailable"))
			return
		}

		var body SignupRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		identity, err := sessions.Signup(r.Context(), body.Email, body.Password, body.FullName)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		writeAuthenticated(w, r, cfg, logg, identity, http.StatusCreated)
	}
}

// AuthLogin authenticates a registered account.
func AuthLogin(sessions *session.Store, cfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session store unavailable"))
			return
		}

		var body LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		identity, err := sessions.Login(r.Context(), body.Email, body.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		writeAuthenticated(w, r, cfg, logg, identity, http.StatusOK)
	}
}

// AuthGuest activates an anonymous session without credentials.
func AuthGuest(sessions *session.Store, cfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session store unavailable"))
			return
		}

		identity, err := sessions.LoginAsGuest(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		writeAuthenticated(w, r, cfg, logg, identity, http.StatusCreated)
	}
}

// AuthLogout tears down the active session.
func AuthLogout(sessions *session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session store unavailable"))
			return
		}

		if err := sessions.Logout(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

func writeAuthenticated(w http.ResponseWriter, r *http.Request, cfg config.JWTConfig, logg *logger.Logger, identity session.Identity, status int) {
	token, err := pkgauth.MintAccessToken(cfg, time.Now(), pkgauth.AccessTokenPayload{
		UserID:    identity.ID,
		Anonymous: identity.IsGuest,
	})
	if err != nil {
		responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token"))
		return
	}

	w.Header().Set(tokenHeader, token)
	responses.WriteSuccessStatus(w, status, map[string]any{
		"user":  identity,
		"token": token,
	})
}
