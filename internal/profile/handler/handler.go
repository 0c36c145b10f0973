package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	id "clauseguard/pkg/domain"
	dErrors "clauseguard/pkg/domain-errors"

	"clauseguard/internal/platform/middleware"
	"clauseguard/internal/profile/models"
)

// Service defines the profile operations the HTTP layer needs.
type Service interface {
	SubmitQuiz(ctx context.Context, q *models.QuizResponse) (*models.UserPersonalizationProfile, error)
	GetProfile(ctx context.Context, userID id.UserID) (*models.UserPersonalizationProfile, error)
	UpdateSection(ctx context.Context, userID id.UserID, section id.QuizSection, data json.RawMessage, recompute bool) (*models.UserPersonalizationProfile, error)
	Recompute(ctx context.Context, userID id.UserID) (*models.UserPersonalizationProfile, error)
}

// Handler handles profile endpoints.
type Handler struct {
	logger         *slog.Logger
	profiles       Service
	jwtValidator   middleware.JWTValidator
	serviceKeyHash string
}

// New creates a new profile Handler.
func New(profiles Service, logger *slog.Logger, jwtValidator middleware.JWTValidator, serviceKeyHash string) *Handler {
	return &Handler{
		logger:         logger,
		profiles:       profiles,
		jwtValidator:   jwtValidator,
		serviceKeyHash: serviceKeyHash,
	}
}

// Register registers the profile routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	pr := chi.NewRouter()
	pr.Use(middleware.Recovery(h.logger))
	pr.Use(middleware.RequestID)
	pr.Use(middleware.ClientDevice)
	pr.Use(middleware.Logger(h.logger))
	pr.Use(middleware.Timeout(30 * time.Second))
	pr.Use(middleware.ContentTypeJSON)

	pr.Group(func(g chi.Router) {
		g.Use(middleware.RequireAuth(h.jwtValidator, h.logger))
		g.Post("/v1/profile/quiz", h.handleSubmitQuiz)
		g.Get("/v1/profile/{userID}", h.handleGetProfile)
		g.Put("/v1/profile/{userID}/sections/{section}", h.handleUpdateSection)
	})

	pr.Group(func(g chi.Router) {
		g.Use(middleware.RequireServiceKey(h.serviceKeyHash, h.logger))
		g.Post("/v1/profile/{userID}/recompute", h.handleRecompute)
	})

	r.Mount("/", pr)
}

// authorizedUser parses the path user ID and checks it matches the
// authenticated subject; profiles are strictly self-service.
func (h *Handler) authorizedUser(w http.ResponseWriter, r *http.Request) (id.UserID, bool) {
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		WriteError(w, err)
		return "", false
	}
	if middleware.GetUserID(r.Context()) != userID.String() {
		WriteError(w, dErrors.New(dErrors.CodeForbidden, "profile belongs to a different user"))
		return "", false
	}
	return userID, true
}

func (h *Handler) handleSubmitQuiz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var quiz models.QuizResponse
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&quiz); err != nil {
		h.logger.WarnContext(ctx, "malformed quiz payload",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if middleware.GetUserID(ctx) != quiz.UserID {
		WriteError(w, dErrors.New(dErrors.CodeForbidden, "quiz belongs to a different user"))
		return
	}

	profile, err := h.profiles.SubmitQuiz(ctx, &quiz)
	if err != nil {
		h.writeServiceError(w, r, "submit quiz", err)
		return
	}
	WriteJSON(w, http.StatusCreated, profile)
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizedUser(w, r)
	if !ok {
		return
	}
	profile, err := h.profiles.GetProfile(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, "get profile", err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

// updateSectionRequest is the partial update envelope. RecomputeProfile is a
// pointer so an absent field defaults to true.
type updateSectionRequest struct {
	SectionData      json.RawMessage `json:"sectionData"`
	RecomputeProfile *bool           `json:"recomputeProfile"`
}

func (h *Handler) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.authorizedUser(w, r)
	if !ok {
		return
	}
	section, err := id.ParseQuizSection(chi.URLParam(r, "section"))
	if err != nil {
		WriteError(w, err)
		return
	}

	var req updateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if len(req.SectionData) == 0 {
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "sectionData is required"))
		return
	}
	recompute := req.RecomputeProfile == nil || *req.RecomputeProfile

	profile, err := h.profiles.UpdateSection(ctx, userID, section, req.SectionData, recompute)
	if err != nil {
		h.writeServiceError(w, r, "update section", err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) handleRecompute(w http.ResponseWriter, r *http.Request) {
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		WriteError(w, err)
		return
	}
	profile, err := h.profiles.Recompute(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, "recompute profile", err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

// writeServiceError logs at a severity matching the error class and writes the
// envelope. Client mistakes are warnings; anything else is an error.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	ctx := r.Context()
	switch {
	case dErrors.Is(err, dErrors.CodeValidation),
		dErrors.Is(err, dErrors.CodeBadRequest),
		dErrors.Is(err, dErrors.CodeUnknownSection),
		dErrors.Is(err, dErrors.CodeVersionMismatch),
		dErrors.Is(err, dErrors.CodeNotFound):
		h.logger.WarnContext(ctx, "rejected "+op,
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
	default:
		h.logger.ErrorContext(ctx, "failed to "+op,
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
	}
	WriteError(w, err)
}
