package upload

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fieldsurvey/service/internal/response"
)

// Handler holds the HTTP handlers for the upload orchestration endpoints.
type Handler struct {
	coord *Coordinator
}

// NewHandler creates a new upload Handler.
func NewHandler(coord *Coordinator) *Handler {
	return &Handler{coord: coord}
}

type grantRequest struct {
	SurveyID    string `json:"survey_id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
	ExpiresIn   *int64 `json:"expires_in,omitempty"`
}

type completeRequest struct {
	SurveyID string `json:"survey_id"`
	FileKey  string `json:"file_key"`
}

type completeResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	InternalID string `json:"internal_id"`
}

// CreateGrant godoc
//
//	@Summary		Request upload grant
//	@Description	Mints a time-limited signed PUT URL for one photo. The client uploads directly to the object store with the returned headers, then calls upload-complete.
//	@Tags			uploads
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		grantRequest	true	"Grant request"
//	@Success		200		{object}	Grant
//	@Failure		400		{object}	response.Envelope
//	@Failure		401		{object}	response.Envelope
//	@Failure		404		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/upload-grant [post]
func (h *Handler) CreateGrant(w http.ResponseWriter, r *http.Request) {
	var req grantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	var expiresIn int64
	if req.ExpiresIn != nil {
		expiresIn = *req.ExpiresIn
	}

	grant, err := h.coord.RequestGrant(r.Context(), req.SurveyID, req.Filename, req.ContentType, expiresIn)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidArgument):
			response.BadRequest(w, "survey_id and filename are required")
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "survey not found")
		case errors.Is(err, ErrUpstream):
			response.Error(w, http.StatusInternalServerError, "failed to create upload url")
		default:
			response.Error(w, http.StatusInternalServerError, "failed to check survey")
		}
		return
	}

	response.JSON(w, http.StatusOK, grant)
}

// Complete godoc
//
//	@Summary		Confirm completed upload
//	@Description	Reconciles a finished direct upload into the survey record: appends the photo reference and decrements the awaiting-photo counter.
//	@Tags			uploads
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		completeRequest	true	"Completion request"
//	@Success		200		{object}	completeResponse
//	@Failure		400		{object}	response.Envelope
//	@Failure		401		{object}	response.Envelope
//	@Failure		404		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/upload-complete [post]
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	var req completeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.coord.Confirm(r.Context(), req.SurveyID, req.FileKey); err != nil {
		switch {
		case errors.Is(err, ErrKeyMismatch):
			response.BadRequest(w, "file_key does not match survey_id")
		case errors.Is(err, ErrInvalidArgument):
			response.BadRequest(w, "survey_id and file_key are required")
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "survey not found")
		default:
			response.Error(w, http.StatusInternalServerError, "failed to update database")
		}
		return
	}

	response.JSON(w, http.StatusOK, completeResponse{
		Success:    true,
		Message:    "Photo upload completed",
		InternalID: req.SurveyID,
	})
}
