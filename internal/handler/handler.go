// Package handler provides HTTP request handlers for the application.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/dmfreire/zapdispatch/internal/dispatch"
	"github.com/dmfreire/zapdispatch/internal/middleware"
	"github.com/dmfreire/zapdispatch/internal/models"
	"github.com/dmfreire/zapdispatch/internal/service"
	"github.com/dmfreire/zapdispatch/internal/warmup"
)

const (
	errorCodeNotFound        = "CAMPAIGN_NOT_FOUND"
	errorCodeAlreadyRunning  = "CAMPAIGN_ALREADY_RUNNING"
	errorCodeMissingInstance = "CAMPAIGN_MISSING_INSTANCE"
	errorCodeAlreadyWarming  = "WARMUP_ALREADY_ACTIVE"
	errorCodeInvalidRequest  = "INVALID_REQUEST"
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type warmupRequest struct {
	InstanceName string `json:"instance_name"`
}

// StartCampaign launches the dispatch loop for a campaign.
func (h *Handler) StartCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.campaignID(w, r)
	if !ok {
		return
	}

	if err := h.service.Campaign.Start(campaignID); err != nil {
		h.campaignError(w, r, campaignID, "start", err)
		return
	}

	render.JSON(w, r, statusResponse{Status: "started", Message: "Campaign dispatch started"})
}

// PauseCampaign asks the running loop to stop at its next checkpoint.
func (h *Handler) PauseCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.campaignID(w, r)
	if !ok {
		return
	}

	if err := h.service.Campaign.Pause(campaignID); err != nil {
		h.campaignError(w, r, campaignID, "pause", err)
		return
	}

	render.JSON(w, r, statusResponse{Status: "paused", Message: "Campaign paused"})
}

// ResumeCampaign unpauses a live loop or restarts an exited one.
func (h *Handler) ResumeCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.campaignID(w, r)
	if !ok {
		return
	}

	if err := h.service.Campaign.Resume(campaignID); err != nil {
		h.campaignError(w, r, campaignID, "resume", err)
		return
	}

	render.JSON(w, r, statusResponse{Status: "resumed", Message: "Campaign resumed"})
}

// StartWarmup opens a warmup cycle for an instance.
func (h *Handler) StartWarmup(w http.ResponseWriter, r *http.Request) {
	var req warmupRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil || req.InstanceName == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "instance_name is required")
		return
	}

	record, err := h.service.Warmup.Start(req.InstanceName)
	if err != nil {
		if errors.Is(err, warmup.ErrAlreadyWarming) {
			h.sendError(w, r, http.StatusConflict, errorCodeAlreadyWarming, "Warmup is already active for this instance")
			return
		}
		h.internalError(w, r, "Failed to start warmup", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, record)
}

// StopWarmup pauses the instance's active warmup cycle.
func (h *Handler) StopWarmup(w http.ResponseWriter, r *http.Request) {
	var req warmupRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil || req.InstanceName == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "instance_name is required")
		return
	}

	if err := h.service.Warmup.Stop(req.InstanceName); err != nil {
		h.internalError(w, r, "Failed to stop warmup", err)
		return
	}

	render.JSON(w, r, statusResponse{Status: "stopped", Message: "Warmup paused"})
}

// WarmupStatus reports the instance's current warmup day and ceiling.
func (h *Handler) WarmupStatus(w http.ResponseWriter, r *http.Request) {
	instance := chi.URLParam(r, "instance")

	status, err := h.service.Warmup.Status(instance)
	if err != nil {
		h.internalError(w, r, "Failed to get warmup status", err)
		return
	}

	render.JSON(w, r, status)
}

// WarmupSchedule returns the full 28-day ramp-up table.
func (h *Handler) WarmupSchedule(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.Warmup.Schedule())
}

// ThrottleStats exposes an instance's live anti-ban counters, limits
// and provider connection state.
func (h *Handler) ThrottleStats(w http.ResponseWriter, r *http.Request) {
	instance := chi.URLParam(r, "instance")

	stats, err := h.service.Throttle.Stats(r.Context(), instance)
	if err != nil {
		h.internalError(w, r, "Failed to get throttle stats", err)
		return
	}

	render.JSON(w, r, stats)
}

// ResetThrottle zeroes the instance's running message total.
func (h *Handler) ResetThrottle(w http.ResponseWriter, r *http.Request) {
	instance := chi.URLParam(r, "instance")
	h.service.Throttle.Reset(instance)

	render.JSON(w, r, statusResponse{Status: "reset", Message: "Throttle counters reset"})
}

// ListCampaigns returns every campaign with its aggregate counters.
func (h *Handler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.service.Campaign.List()
	if err != nil {
		h.internalError(w, r, "Failed to list campaigns", err)
		return
	}

	render.JSON(w, r, campaigns)
}

// CampaignDispatches returns the campaign's per-contact delivery records.
func (h *Handler) CampaignDispatches(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.campaignID(w, r)
	if !ok {
		return
	}

	dispatches, err := h.service.Campaign.Dispatches(campaignID)
	if err != nil {
		h.campaignError(w, r, campaignID, "inspect", err)
		return
	}

	render.JSON(w, r, dispatches)
}

type importContactsRequest struct {
	Contacts []importContact `json:"contacts"`
}

type importContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type importContactsResponse struct {
	Imported      int   `json:"imported"`
	TotalContacts int64 `json:"total_contacts"`
}

// ImportContacts appends a batch of contacts to a campaign.
func (h *Handler) ImportContacts(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.campaignID(w, r)
	if !ok {
		return
	}

	var req importContactsRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil || len(req.Contacts) == 0 {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "contacts must be a non-empty array")
		return
	}

	contacts := make([]*models.Contact, 0, len(req.Contacts))
	for _, c := range req.Contacts {
		if c.Phone == "" {
			h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "every contact needs a phone")
			return
		}
		contacts = append(contacts, &models.Contact{Name: c.Name, Phone: c.Phone})
	}

	total, err := h.service.Campaign.ImportContacts(campaignID, contacts)
	if err != nil {
		h.campaignError(w, r, campaignID, "import contacts into", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, importContactsResponse{
		Imported:      len(contacts),
		TotalContacts: total,
	})
}

// HealthCheck reports store/cache connectivity and active loop count.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	if health.Status == service.HealthStateUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	render.JSON(w, r, health)
}

func (h *Handler) campaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "campaign id must be a positive integer")
		return 0, false
	}
	return id, true
}

func (h *Handler) campaignError(w http.ResponseWriter, r *http.Request, campaignID int64, op string, err error) {
	switch {
	case errors.Is(err, dispatch.ErrCampaignNotFound):
		h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, "Campaign not found")
	case errors.Is(err, dispatch.ErrAlreadyRunning):
		h.sendError(w, r, http.StatusConflict, errorCodeAlreadyRunning, "Campaign is already running")
	case errors.Is(err, dispatch.ErrMissingInstance):
		h.sendError(w, r, http.StatusUnprocessableEntity, errorCodeMissingInstance, "Campaign has no instance configured")
	default:
		h.logger.Error("Campaign operation failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Int64("campaign_id", campaignID),
			zap.String("operation", op),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to "+op+" campaign")
	}
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, message string, err error) {
	h.logger.Error(message,
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Error(err))
	h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, message)
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, errorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: time.Now(),
	})
}
