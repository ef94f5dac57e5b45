package handler

import (
	"errors"
	"fmt"
	"net/http"

	"hospital-replica-sync/internal/usecase"
	"hospital-replica-sync/pkg/response"
)

type ReplicaHandler struct {
	replicaUsecase usecase.ReplicaUsecase
}

func NewReplicaHandler(replicaUsecase usecase.ReplicaUsecase) *ReplicaHandler {
	return &ReplicaHandler{
		replicaUsecase: replicaUsecase,
	}
}

func (h *ReplicaHandler) GetDepartments(w http.ResponseWriter, r *http.Request) {
	records, err := h.replicaUsecase.GetDepartments(r.Context())
	writeRecords(w, "departments", records, len(records), err)
}

func (h *ReplicaHandler) GetPhysicians(w http.ResponseWriter, r *http.Request) {
	records, err := h.replicaUsecase.GetPhysicians(r.Context())
	writeRecords(w, "physicians", records, len(records), err)
}

func (h *ReplicaHandler) GetConsultations(w http.ResponseWriter, r *http.Request) {
	records, err := h.replicaUsecase.GetConsultations(r.Context())
	writeRecords(w, "consultations", records, len(records), err)
}

func writeRecords(w http.ResponseWriter, table string, records any, n int, err error) {
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidStoredRecord) {
			response.InternalServerError(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to read "+table)
		return
	}

	response.Success(w, http.StatusOK, fmt.Sprintf("%d %s found", n, table), records)
}
