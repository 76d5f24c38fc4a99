package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dealflowhq/dealflow-backend/internal/domain"
	"github.com/dealflowhq/dealflow-backend/internal/service/memo"
)

// memoService defines the minimal interface needed by MemoHandler.
type memoService interface {
	Save(ctx context.Context, input memo.SaveMemoInput) (*domain.ICMemo, error)
	GetCurrent(ctx context.Context, dealID uuid.UUID) (*domain.ICMemo, error)
	ListVersions(ctx context.Context, dealID uuid.UUID) ([]domain.ICMemoVersion, error)
	GetVersion(ctx context.Context, dealID uuid.UUID, versionNumber int) (*domain.ICMemoVersion, error)
}

// MemoHandler serves IC memo REST endpoints.
type MemoHandler struct {
	svc memoService
	log *slog.Logger
}

// NewMemoHandler creates a MemoHandler.
func NewMemoHandler(svc memoService, logger *slog.Logger) *MemoHandler {
	return &MemoHandler{svc: svc, log: logger.With("handler", "memo")}
}

type memoSectionsPayload struct {
	Summary       *string `json:"summary,omitempty"`
	Market        *string `json:"market,omitempty"`
	Product       *string `json:"product,omitempty"`
	Traction      *string `json:"traction,omitempty"`
	Risks         *string `json:"risks,omitempty"`
	OpenQuestions *string `json:"openQuestions,omitempty"`
}

type saveMemoRequest struct {
	Sections      memoSectionsPayload `json:"sections"`
	ChangeSummary *string             `json:"changeSummary,omitempty"`
}

type memoResponse struct {
	ID             string              `json:"id"`
	DealID         string              `json:"dealId"`
	CreatedBy      string              `json:"createdBy"`
	LastUpdatedBy  string              `json:"lastUpdatedBy"`
	CurrentVersion int                 `json:"currentVersion"`
	Sections       memoSectionsPayload `json:"sections"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

type memoVersionResponse struct {
	ID            string              `json:"id"`
	MemoID        string              `json:"memoId"`
	DealID        string              `json:"dealId"`
	VersionNumber int                 `json:"versionNumber"`
	CreatedBy     string              `json:"createdBy"`
	Sections      memoSectionsPayload `json:"sections"`
	ChangeSummary *string             `json:"changeSummary,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// Save handles PUT /deals/{id}/memo. The first save for a deal creates
// the memo at version 1; every later save appends the next version.
func (h *MemoHandler) Save(w http.ResponseWriter, r *http.Request) {
	dealID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req saveMemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Save(r.Context(), memo.SaveMemoInput{
		DealID:        dealID,
		Sections:      toDomainSections(req.Sections),
		ChangeSummary: req.ChangeSummary,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	status := http.StatusOK
	if result.CurrentVersion == 1 {
		status = http.StatusCreated
	}

	writeJSON(w, status, toMemoResponse(result))
}

// GetCurrent handles GET /deals/{id}/memo.
func (h *MemoHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	dealID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.svc.GetCurrent(r.Context(), dealID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMemoResponse(result))
}

// ListVersions handles GET /deals/{id}/memo/versions.
func (h *MemoHandler) ListVersions(w http.ResponseWriter, r *http.Request) {
	dealID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	versions, err := h.svc.ListVersions(r.Context(), dealID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]memoVersionResponse, 0, len(versions))
	for _, v := range versions {
		out = append(out, toMemoVersionResponse(&v))
	}

	writeJSON(w, http.StatusOK, map[string][]memoVersionResponse{"versions": out})
}

// GetVersion handles GET /deals/{id}/memo/versions/{number}.
func (h *MemoHandler) GetVersion(w http.ResponseWriter, r *http.Request) {
	dealID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	number, err := strconv.Atoi(r.PathValue("number"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid version number")
		return
	}

	version, err := h.svc.GetVersion(r.Context(), dealID, number)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMemoVersionResponse(version))
}

func (h *MemoHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleDomainError(w, r, h.log, err)
}

func toDomainSections(p memoSectionsPayload) domain.MemoSections {
	return domain.MemoSections{
		Summary:       p.Summary,
		Market:        p.Market,
		Product:       p.Product,
		Traction:      p.Traction,
		Risks:         p.Risks,
		OpenQuestions: p.OpenQuestions,
	}
}

func toSectionsPayload(s domain.MemoSections) memoSectionsPayload {
	return memoSectionsPayload{
		Summary:       s.Summary,
		Market:        s.Market,
		Product:       s.Product,
		Traction:      s.Traction,
		Risks:         s.Risks,
		OpenQuestions: s.OpenQuestions,
	}
}

func toMemoResponse(m *domain.ICMemo) memoResponse {
	return memoResponse{
		ID:             m.ID.String(),
		DealID:         m.DealID.String(),
		CreatedBy:      m.CreatedBy.String(),
		LastUpdatedBy:  m.LastUpdatedBy.String(),
		CurrentVersion: m.CurrentVersion,
		Sections:       toSectionsPayload(m.Sections),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toMemoVersionResponse(v *domain.ICMemoVersion) memoVersionResponse {
	return memoVersionResponse{
		ID:            v.ID.String(),
		MemoID:        v.MemoID.String(),
		DealID:        v.DealID.String(),
		VersionNumber: v.VersionNumber,
		CreatedBy:     v.CreatedBy.String(),
		Sections:      toSectionsPayload(v.Sections),
		ChangeSummary: v.ChangeSummary,
		CreatedAt:     v.CreatedAt,
	}
}
