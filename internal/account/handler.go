package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fieldsurvey/service/internal/response"
)

// Handler holds HTTP handlers for auth endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new account Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type loginRequest struct {
	Account  string `json:"account"  example:"inspector01"`
	Password string `json:"password" example:"P@ssw0rd!"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Exchange account credentials for a bearer token used on all protected endpoints.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"Credentials"
//	@Success		200		{object}	loginResponse
//	@Failure		400		{object}	response.Envelope
//	@Failure		401		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.Account == "" || req.Password == "" {
		response.BadRequest(w, "account and password are required")
		return
	}

	token, err := h.svc.Login(r.Context(), req.Account, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(w, "wrong credentials")
			return
		}
		response.InternalError(w)
		return
	}

	response.JSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}
