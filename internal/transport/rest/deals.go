package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dealflowhq/dealflow-backend/internal/domain"
	"github.com/dealflowhq/dealflow-backend/internal/service/pipeline"
)

// pipelineService defines the minimal interface needed by DealHandler.
type pipelineService interface {
	CreateDeal(ctx context.Context, input pipeline.CreateDealInput) (*domain.Deal, error)
	UpdateDeal(ctx context.Context, input pipeline.UpdateDealInput) (*domain.Deal, error)
	DeleteDeal(ctx context.Context, dealID uuid.UUID) error
	GetDeal(ctx context.Context, dealID uuid.UUID) (*domain.Deal, error)
	ListDeals(ctx context.Context, input pipeline.ListInput) ([]domain.Deal, int, error)
	ListByStage(ctx context.Context, stage domain.Stage, input pipeline.ListInput) ([]domain.Deal, error)
	ListByOwner(ctx context.Context, owner string, input pipeline.ListInput) ([]domain.Deal, error)
	ListByStatus(ctx context.Context, status domain.DealStatus, input pipeline.ListInput) ([]domain.Deal, error)
	MoveStage(ctx context.Context, input pipeline.MoveStageInput) (*domain.Deal, *domain.Activity, error)
	ListActivities(ctx context.Context, dealID uuid.UUID, input pipeline.ListInput) ([]domain.Activity, error)
	ListUserActivities(ctx context.Context, userID uuid.UUID, input pipeline.ListInput) ([]domain.Activity, error)
	Summary(ctx context.Context) (map[domain.Stage]int, error)
}

// DealHandler serves deal pipeline REST endpoints.
type DealHandler struct {
	svc pipelineService
	log *slog.Logger
}

// NewDealHandler creates a DealHandler.
func NewDealHandler(svc pipelineService, logger *slog.Logger) *DealHandler {
	return &DealHandler{svc: svc, log: logger.With("handler", "deals")}
}

type createDealRequest struct {
	Name       string   `json:"name"`
	Owner      string   `json:"owner"`
	CompanyURL *string  `json:"companyUrl,omitempty"`
	Round      *string  `json:"round,omitempty"`
	CheckSize  *float64 `json:"checkSize,omitempty"`
	Stage      string   `json:"stage,omitempty"`
	Status     string   `json:"status,omitempty"`
}

type updateDealRequest struct {
	Name       *string  `json:"name,omitempty"`
	Owner      *string  `json:"owner,omitempty"`
	CompanyURL *string  `json:"companyUrl,omitempty"`
	Round      *string  `json:"round,omitempty"`
	CheckSize  *float64 `json:"checkSize,omitempty"`
	Status     *string  `json:"status,omitempty"`
}

type moveStageRequest struct {
	Stage string `json:"stage"`
}

type dealResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Owner      string    `json:"owner"`
	CompanyURL *string   `json:"companyUrl,omitempty"`
	Round      *string   `json:"round,omitempty"`
	CheckSize  *float64  `json:"checkSize,omitempty"`
	Stage      string    `json:"stage"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type dealListResponse struct {
	Deals []dealResponse `json:"deals"`
	Total int            `json:"total,omitempty"`
}

type activityResponse struct {
	ID          string    `json:"id"`
	DealID      string    `json:"dealId"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	OldValue    *string   `json:"oldValue,omitempty"`
	NewValue    *string   `json:"newValue,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type moveStageResponse struct {
	Deal     dealResponse      `json:"deal"`
	Activity *activityResponse `json:"activity,omitempty"`
}

type summaryResponse struct {
	Stages []stageCount `json:"stages"`
	Total  int          `json:"total"`
}

type stageCount struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// Create handles POST /deals.
func (h *DealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deal, err := h.svc.CreateDeal(r.Context(), pipeline.CreateDealInput{
		Name:       req.Name,
		Owner:      req.Owner,
		CompanyURL: req.CompanyURL,
		Round:      req.Round,
		CheckSize:  req.CheckSize,
		Stage:      domain.Stage(req.Stage),
		Status:     domain.DealStatus(req.Status),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDealResponse(deal))
}

// Get handles GET /deals/{id}.
func (h *DealHandler) Get(w http.ResponseWriter, r *http.Request) {
	dealID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	deal, err := h.svc.GetDeal(r.Context(), dealID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDealResponse(deal))
}

// List handles GET /deals. Optional owner and status query parameters
// narrow the result; without them the full paginated pipeline is returned.
func (h *DealHandler) List(w http.ResponseWriter, r *http.Request) {
	input, ok := queryListInput(w, r)
	if !ok {
		return
	}

	if owner := r.URL.Query().Get("owner"); owner != "" {
		deals, err := h.svc.ListByOwner(r.Context(), owner, input)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dealListResponse{Deals: toDealResponses(deals)})
		return
	}

	if status := r.URL.Query().Get("status"); status != "" {
		deals, err := h.svc.ListByStatus(r.Context(), domain.DealStatus(status), input)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dealListResponse{Deals: toDealResponses(deals)})
		return
	}

	deals, total, err := h.svc.ListDeals(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dealListResponse{Deals: toDealResponses(deals), Total: total})
}

// ListByStage handles GET /stages/{stage}/deals.
func (h *DealHandler) ListByStage(w http.ResponseWriter, r *http.Request) {
	input, ok := queryListInput(w, r)
	if !ok {
		return
	}

	deals, err := h.svc.ListByStage(r.Context(), domain.Stage(r.PathValue("stage")), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dealListResponse{Deals: toDealResponses(deals)})
}

// Update handles PUT /deals/{id}.
func (h *DealHandler) Update(w http.ResponseWriter, r *http.Request) {
	dealID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := domain.DealUpdate{
		Name:       req.Name,
		Owner:      req.Owner,
		CompanyURL: req.CompanyURL,
		Round:      req.Round,
		CheckSize:  req.CheckSize,
	}
	if req.Status != nil {
		status := domain.DealStatus(*req.Status)
		fields.Status = &status
	}

	deal, err := h.svc.UpdateDeal(r.Context(), pipeline.UpdateDealInput{
		DealID: dealID,
		Fields: fields,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDealResponse(deal))
}

// Delete handles DELETE /deals/{id}.
func (h *DealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	dealID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteDeal(r.Context(), dealID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MoveStage handles POST /deals/{id}/stage.
func (h *DealHandler) MoveStage(w http.ResponseWriter, r *http.Request) {
	dealID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req moveStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deal, activity, err := h.svc.MoveStage(r.Context(), pipeline.MoveStageInput{
		DealID: dealID,
		Stage:  domain.Stage(req.Stage),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := moveStageResponse{Deal: toDealResponse(deal)}
	if activity != nil {
		a := toActivityResponse(*activity)
		resp.Activity = &a
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListActivities handles GET /deals/{id}/activities.
func (h *DealHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	dealID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	input, ok := queryListInput(w, r)
	if !ok {
		return
	}

	activities, err := h.svc.ListActivities(r.Context(), dealID, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]activityResponse{
		"activities": toActivityResponses(activities),
	})
}

// ListUserActivities handles GET /users/{id}/activities.
func (h *DealHandler) ListUserActivities(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	input, ok := queryListInput(w, r)
	if !ok {
		return
	}

	activities, err := h.svc.ListUserActivities(r.Context(), userID, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]activityResponse{
		"activities": toActivityResponses(activities),
	})
}

// Summary handles GET /pipeline/summary. Every stage appears in the
// response even when its count is zero, in pipeline order.
func (h *DealHandler) Summary(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.Summary(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := summaryResponse{Stages: make([]stageCount, 0, len(domain.Stages()))}
	for _, stage := range domain.Stages() {
		n := counts[stage]
		resp.Stages = append(resp.Stages, stageCount{Stage: stage.String(), Count: n})
		resp.Total += n
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *DealHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleDomainError(w, r, h.log, err)
}

func handleDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func queryListInput(w http.ResponseWriter, r *http.Request) (pipeline.ListInput, bool) {
	var input pipeline.ListInput

	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return input, false
		}
		input.Limit = n
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return input, false
		}
		input.Offset = n
	}

	return input, true
}

func toDealResponse(d *domain.Deal) dealResponse {
	return dealResponse{
		ID:         d.ID.String(),
		Name:       d.Name,
		Owner:      d.Owner,
		CompanyURL: d.CompanyURL,
		Round:      d.Round,
		CheckSize:  d.CheckSize,
		Stage:      d.Stage.String(),
		Status:     d.Status.String(),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func toDealResponses(deals []domain.Deal) []dealResponse {
	out := make([]dealResponse, 0, len(deals))
	for i := range deals {
		out = append(out, toDealResponse(&deals[i]))
	}
	return out
}

func toActivityResponse(a domain.Activity) activityResponse {
	return activityResponse{
		ID:          a.ID.String(),
		DealID:      a.DealID.String(),
		UserID:      a.UserID.String(),
		Type:        a.Type.String(),
		Description: a.Description,
		OldValue:    a.OldValue,
		NewValue:    a.NewValue,
		CreatedAt:   a.CreatedAt,
	}
}

func toActivityResponses(activities []domain.Activity) []activityResponse {
	out := make([]activityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, toActivityResponse(a))
	}
	return out
}
