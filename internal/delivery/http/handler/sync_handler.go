package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"hospital-replica-sync/internal/delivery/dto"
	"hospital-replica-sync/internal/service"
	"hospital-replica-sync/internal/usecase"
	"hospital-replica-sync/pkg/response"
	"hospital-replica-sync/pkg/validator"

	"github.com/gorilla/mux"
)

type SyncHandler struct {
	syncUsecase    usecase.SyncUsecase
	syncRunUsecase usecase.SyncRunUsecase
	validator      *validator.CustomValidator
}

func NewSyncHandler(syncUsecase usecase.SyncUsecase, syncRunUsecase usecase.SyncRunUsecase, validator *validator.CustomValidator) *SyncHandler {
	return &SyncHandler{
		syncUsecase:    syncUsecase,
		syncRunUsecase: syncRunUsecase,
		validator:      validator,
	}
}

// Sync triggers one sync run. The summary is written as is, with its code
// as the HTTP status.
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := dto.SyncRequest{
		Table:  query.Get("table"),
		Cutoff: query.Get("cutoff"),
	}
	if req.Cutoff == "" {
		req.Cutoff = query.Get("fecha_mayor")
	}

	if req.Table == "" && req.Cutoff == "" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result := h.syncUsecase.Sync(r.Context(), req.Table, req.Cutoff)
	response.JSON(w, result.Code, result)
}

func (h *SyncHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.syncUsecase.GetStatus(r.Context(), r.URL.Query().Get("table"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTable):
			response.BadRequest(w, "Invalid table")
		case errors.Is(err, service.ErrStatusNotFound):
			response.NotFound(w, "Table has not been synced yet")
		case errors.Is(err, service.ErrStatusUnavailable):
			response.ServiceUnavailable(w, "Sync status is unavailable")
		default:
			response.InternalServerError(w, "Failed to get sync status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Sync status retrieved successfully", status)
}

func (h *SyncHandler) GetAllRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.syncRunUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get sync runs")
		return
	}

	response.Success(w, http.StatusOK, "Sync runs retrieved successfully", runs)
}

func (h *SyncHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid sync run ID")
		return
	}

	run, err := h.syncRunUsecase.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrSyncRunNotFound) {
			response.NotFound(w, "Sync run not found")
			return
		}
		response.InternalServerError(w, "Failed to get sync run")
		return
	}

	response.Success(w, http.StatusOK, "Sync run retrieved successfully", run)
}
