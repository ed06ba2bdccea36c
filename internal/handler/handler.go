package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gamereviews/internal/codec"
	"gamereviews/internal/domain"
	"gamereviews/internal/logging"
	"gamereviews/internal/service"
)

// ReviewHandler handles the reviews API
type ReviewHandler struct {
	svc   *service.ReviewService
	codec *codec.JSONCodec
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(svc *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		svc:   svc,
		codec: codec.NewJSONCodec(),
	}
}

// MessageResponse is the body of every error response
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ListCategories returns every category
func (h *ReviewHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, map[string]any{"categories": categories}, http.StatusOK)
}

// ListUsers returns every user
func (h *ReviewHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, map[string]any{"users": users}, http.StatusOK)
}

// ListReviews returns reviews filtered by category and sorted by sort_by/order
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ReviewFilter{
		Category: q.Get("category"),
		SortBy:   q.Get("sort_by"),
		Order:    q.Get("order"),
	}

	reviews, err := h.svc.ListReviews(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, map[string]any{"reviews": reviews}, http.StatusOK)
}

// GetReview returns a single review
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.svc.GetReview(r.Context(), chi.URLParam(r, "review_id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, map[string]any{"review": review}, http.StatusOK)
}

type patchReviewRequest struct {
	IncVotes any `json:"inc_votes"`
}

// PatchReview applies a vote increment
func (h *ReviewHandler) PatchReview(w http.ResponseWriter, r *http.Request) {
	// A body that fails to decode is treated as missing inc_votes so the
	// path is still validated first
	var req patchReviewRequest
	if err := h.codec.Decode(r.Body, &req); err != nil {
		req = patchReviewRequest{}
	}

	review, err := h.svc.IncrementVotes(r.Context(), chi.URLParam(r, "review_id"), req.IncVotes)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, map[string]any{"review": review}, http.StatusOK)
}

// ListComments returns a review's comments
func (h *ReviewHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.ListComments(r.Context(), chi.URLParam(r, "review_id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, map[string]any{"comments": comments}, http.StatusOK)
}

// PostComment adds a comment to a review
func (h *ReviewHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	var req service.NewCommentInput
	if err := h.codec.Decode(r.Body, &req); err != nil {
		req = service.NewCommentInput{}
	}

	comment, err := h.svc.CreateComment(r.Context(), chi.URLParam(r, "review_id"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, map[string]any{"postedComment": comment}, http.StatusCreated)
}

// DeleteComment removes a comment
func (h *ReviewHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteComment(r.Context(), chi.URLParam(r, "comment_id")); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// NotFound answers unmatched paths
func (h *ReviewHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, domain.ErrBadPath)
}

// MethodNotAllowed answers known paths requested with an unsupported method
func (h *ReviewHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, MessageResponse{Msg: "Method not allowed"}, http.StatusMethodNotAllowed)
}

// Health reports whether the store is reachable
func (h *ReviewHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ping(r.Context()); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Health check failed")
		h.writeJSON(w, map[string]string{"status": "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	h.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// StatusFor maps an error to its HTTP status
func StatusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindBadPath, domain.KindInvalidQuery, domain.KindInvalidInput, domain.KindInvalidUser:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes {"msg": ...}. Unclassified errors are logged and
// reported without detail.
func (h *ReviewHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)

	var de *domain.Error
	if status == http.StatusInternalServerError || !errors.As(err, &de) {
		logging.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Request failed")
		h.writeJSON(w, MessageResponse{Msg: "Internal server error"}, http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, MessageResponse{Msg: de.Msg}, status)
}

func (h *ReviewHandler) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", h.codec.ContentType())
	w.WriteHeader(status)
	if err := h.codec.Encode(w, data); err != nil {
		logging.Error().Err(err).Msg("Failed to encode JSON")
	}
}
