package survey

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fieldsurvey/service/internal/response"
	"github.com/fieldsurvey/service/internal/storage"
)

// maxDirectUploadBytes caps the multipart fallback upload size.
const maxDirectUploadBytes = 32 << 20

// Handler holds HTTP handlers for survey record endpoints.
type Handler struct {
	svc   *Service
	store storage.Storage
}

// NewHandler creates a new survey Handler.
func NewHandler(svc *Service, store storage.Storage) *Handler {
	return &Handler{svc: svc, store: store}
}

type createRequest struct {
	ID                 string  `json:"id"`
	StartPoint         string  `json:"start_point"`
	EndPoint           string  `json:"end_point"`
	Orientation        string  `json:"orientation"`
	Distance           float64 `json:"distance"`
	TopDistance        string  `json:"top_distance"`
	Category           string  `json:"category"`
	Details            Details `json:"details"`
	Remarks            *string `json:"remarks,omitempty"`
	AwaitingPhotoCount int32   `json:"awaiting_photo_count"`
}

type statusResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	InternalID string `json:"internal_id,omitempty"`
}

// Create godoc
//
//	@Summary		Create survey record
//	@Description	Register a new survey record under its client-supplied id. Photos are attached afterwards via the upload endpoints.
//	@Tags			surveys
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		createRequest	true	"Survey record"
//	@Success		201		{object}	statusResponse
//	@Failure		400		{object}	response.Envelope
//	@Failure		409		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/surveys [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		response.BadRequest(w, "id is required")
		return
	}
	if req.AwaitingPhotoCount < 0 {
		response.BadRequest(w, "awaiting_photo_count must not be negative")
		return
	}

	rec := &Record{
		ID:                 strings.TrimSpace(req.ID),
		StartPoint:         req.StartPoint,
		EndPoint:           req.EndPoint,
		Orientation:        req.Orientation,
		Distance:           req.Distance,
		TopDistance:        req.TopDistance,
		Category:           req.Category,
		Details:            req.Details,
		Remarks:            req.Remarks,
		AwaitingPhotoCount: req.AwaitingPhotoCount,
	}

	id, err := h.svc.Create(r.Context(), rec)
	if err != nil {
		if err == ErrAlreadyExists {
			response.Conflict(w, "survey record already exists")
			return
		}
		response.InternalError(w)
		return
	}

	response.JSON(w, http.StatusCreated, statusResponse{
		Success:    true,
		Message:    "Survey record created",
		InternalID: id,
	})
}

// Get godoc
//
//	@Summary		Get survey record
//	@Tags			surveys
//	@Produce		json
//	@Param			id	path		string	true	"Survey id"
//	@Success		200	{object}	Record
//	@Failure		404	{object}	response.Envelope
//	@Failure		500	{object}	response.Envelope
//	@Router			/surveys/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "survey not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.JSON(w, http.StatusOK, rec)
}

// List godoc
//
//	@Summary		List survey records
//	@Description	Returns records newest first. All filters are optional; created_from/created_to are RFC3339 timestamps.
//	@Tags			surveys
//	@Produce		json
//	@Param			category		query		string	false	"Category filter"
//	@Param			start_point		query		string	false	"Start point filter"
//	@Param			end_point		query		string	false	"End point filter"
//	@Param			created_from	query		string	false	"Created at or after"
//	@Param			created_to		query		string	false	"Created at or before"
//	@Param			limit			query		integer	false	"Page size (max 200, default 50)"
//	@Param			offset			query		integer	false	"Page offset"
//	@Success		200				{array}		Record
//	@Failure		400				{object}	response.Envelope
//	@Failure		500				{object}	response.Envelope
//	@Router			/surveys [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := Filters{
		Category:   q.Get("category"),
		StartPoint: q.Get("start_point"),
		EndPoint:   q.Get("end_point"),
	}

	var err error
	if f.CreatedFrom, err = parseTimeParam(q.Get("created_from")); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if f.CreatedTo, err = parseTimeParam(q.Get("created_to")); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if v := q.Get("limit"); v != "" {
		f.Limit, _ = strconv.ParseInt(v, 10, 64)
	}
	if v := q.Get("offset"); v != "" {
		f.Offset, _ = strconv.ParseInt(v, 10, 64)
	}

	records, err := h.svc.List(r.Context(), f)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.JSON(w, http.StatusOK, records)
}

// UploadPhoto godoc
//
//	@Summary		Upload photo directly
//	@Description	Multipart fallback that proxies the photo bytes through the server instead of the presigned upload flow.
//	@Tags			surveys
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string	true	"Survey id"
//	@Param			photo	formData	file	true	"Photo file"
//	@Success		200		{object}	statusResponse
//	@Failure		400		{object}	response.Envelope
//	@Failure		404		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/surveys/{id}/photos [post]
func (h *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	exists, err := h.svc.Exists(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if !exists {
		response.NotFound(w, "survey not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxDirectUploadBytes)
	file, header, err := r.FormFile("photo")
	if err != nil {
		response.BadRequest(w, "photo file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("surveys/%s/%s%s", id, uuid.NewString(), path.Ext(header.Filename))
	if err := h.store.Upload(r.Context(), key, file, header.Size, contentType); err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to store photo")
		return
	}

	if err := h.svc.AppendPhoto(r.Context(), id, h.store.ObjectURL(key)); err != nil {
		// Best-effort cleanup so the blob does not dangle when the metadata
		// write fails on this path.
		_ = h.store.Delete(r.Context(), key)
		response.Error(w, http.StatusInternalServerError, "failed to update database")
		return
	}

	response.JSON(w, http.StatusOK, statusResponse{
		Success:    true,
		Message:    "Photo uploaded",
		InternalID: id,
	})
}

// parseTimeParam parses an optional RFC3339 query value.
func parseTimeParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("invalid datetime format: %s", value)
	}
	return &t, nil
}
