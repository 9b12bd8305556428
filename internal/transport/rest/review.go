package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kanjilens-backend/internal/domain"
	"github.com/heartmarshall/kanjilens-backend/internal/service/review"
	"github.com/heartmarshall/kanjilens-backend/pkg/ctxutil"
)

type reviewService interface {
	RecordReview(ctx context.Context, input review.RecordReviewInput) (*domain.ReviewItem, error)
	GetOrDefault(ctx context.Context, userID uuid.UUID, kanji string) (domain.SchedulingState, error)
	DueQueue(ctx context.Context, input review.DueQueueInput) ([]domain.ReviewItem, error)
	Stats(ctx context.Context, userID uuid.UUID, now time.Time) (domain.ReviewStats, error)
}

// ReviewHandler serves the review endpoints. All routes require an
// authenticated user.
type ReviewHandler struct {
	svc      reviewService
	log      *slog.Logger
	maxBytes int64
	now      func() time.Time
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger, maxBodyBytes int64) *ReviewHandler {
	return &ReviewHandler{
		svc:      svc,
		log:      logger.With("handler", "review"),
		maxBytes: maxBodyBytes,
		now:      time.Now,
	}
}

type recordReviewRequest struct {
	Grade *int `json:"grade"`
}

type recordReviewResponse struct {
	Status string             `json:"status"`
	Item   reviewItemResponse `json:"item"`
}

type schedulingStateResponse struct {
	Interval   float64 `json:"interval"`
	Repetition int     `json:"repetition"`
	EaseFactor float64 `json:"easeFactor"`
}

type reviewStateResponse struct {
	Kanji string `json:"kanji"`
	schedulingStateResponse
}

type reviewItemResponse struct {
	Kanji string `json:"kanji"`
	schedulingStateResponse
	DueDate        string    `json:"dueDate"`
	LastReviewedAt time.Time `json:"lastReviewedAt"`
}

type dueQueueResponse struct {
	Items []reviewItemResponse `json:"items"`
}

type statsResponse struct {
	Total       int     `json:"total"`
	DueToday    int     `json:"dueToday"`
	Lapsed      int     `json:"lapsed"`
	AverageEase float64 `json:"averageEase"`
}

// Record handles POST /api/reviews/{kanji}.
func (h *ReviewHandler) Record(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req recordReviewRequest
	if err := decodeJSON(w, r, h.maxBytes, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	if req.Grade == nil {
		handleError(w, r, h.log, domain.NewValidationError("grade", "required"))
		return
	}

	item, err := h.svc.RecordReview(r.Context(), review.RecordReviewInput{
		UserID: userID,
		Kanji:  r.PathValue("kanji"),
		Grade:  *req.Grade,
		Now:    h.now(),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, recordReviewResponse{Status: "ok", Item: toReviewItemResponse(*item)})
}

// Get handles GET /api/reviews/{kanji}. Kanji that were never reviewed
// report the default state.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	kanji := r.PathValue("kanji")
	state, err := h.svc.GetOrDefault(r.Context(), userID, kanji)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	// Report the normalized form the state is stored under.
	if normalized, err := domain.NormalizeKanji(kanji); err == nil {
		kanji = normalized
	}
	writeJSON(w, http.StatusOK, reviewStateResponse{Kanji: kanji, schedulingStateResponse: toStateResponse(state)})
}

// Due handles GET /api/reviews/due?limit=N.
func (h *ReviewHandler) Due(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		if n == 0 {
			handleError(w, r, h.log, domain.NewValidationError("limit", "out of range"))
			return
		}
		limit = n
	}

	items, err := h.svc.DueQueue(r.Context(), review.DueQueueInput{
		UserID: userID,
		Limit:  limit,
		Now:    h.now(),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := dueQueueResponse{Items: make([]reviewItemResponse, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, toReviewItemResponse(it))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Stats handles GET /api/reviews/stats.
func (h *ReviewHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	stats, err := h.svc.Stats(r.Context(), userID, h.now())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Total:       stats.Total,
		DueToday:    stats.DueToday,
		Lapsed:      stats.Lapsed,
		AverageEase: stats.AverageEase,
	})
}

func toStateResponse(s domain.SchedulingState) schedulingStateResponse {
	return schedulingStateResponse{
		Interval:   s.Interval,
		Repetition: s.Repetition,
		EaseFactor: s.EaseFactor,
	}
}

func toReviewItemResponse(it domain.ReviewItem) reviewItemResponse {
	return reviewItemResponse{
		Kanji:                   it.Kanji,
		schedulingStateResponse: toStateResponse(it.SchedulingState),
		DueDate:                 it.DueDate.Format(time.DateOnly),
		LastReviewedAt:          it.LastReviewedAt,
	}
}
