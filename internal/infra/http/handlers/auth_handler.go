package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/crmbase/lead-manager/internal/infra/http/middleware"
	"github.com/crmbase/lead-manager/internal/usecase"
)

type AuthHandler struct {
	UC *usecase.AuthUseCase
}

func NewAuthHandler(uc *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{UC: uc}
}

// HandleLogin issues the session token as an HttpOnly cookie; the
// body carries only the user summary.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, usecase.NewDomainError(usecase.CodeValidation, "Invalid JSON"))
		return
	}

	out, err := h.UC.Login(r.Context(), input)
	if err != nil {
		middleware.RecordLogin("failure")
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    out.Token,
		Expires:  time.Now().Add(3 * 24 * time.Hour),
		HttpOnly: true,
		Path:     "/",
	})

	middleware.RecordLogin("success")
	writeData(w, http.StatusOK, map[string]interface{}{"user": out.User})
}

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, usecase.NewDomainError(usecase.CodeValidation, "Invalid JSON"))
		return
	}

	out, err := h.UC.Register(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, out)
}

// HandleInitAdmin is the unauthenticated one-time bootstrap path; the
// usecase refuses it once any admin exists.
func (h *AuthHandler) HandleInitAdmin(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, usecase.NewDomainError(usecase.CodeValidation, "Invalid JSON"))
		return
	}

	out, err := h.UC.RegisterAdmin(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, out)
}

func (h *AuthHandler) HandleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(response{Success: false, Message: "Unauthorized"})
		return
	}

	var input usecase.UpdatePasswordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, usecase.NewDomainError(usecase.CodeValidation, "Invalid JSON"))
		return
	}

	if err := h.UC.UpdatePassword(r.Context(), user.ID, input); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Password updated successfully")
}
