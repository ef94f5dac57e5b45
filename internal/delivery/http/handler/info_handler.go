package handler

import (
	"net/http"

	"hospital-replica-sync/internal/delivery/dto"
	"hospital-replica-sync/pkg/response"
)

type InfoHandler struct {
	info dto.ServiceInfo
}

func NewInfoHandler(info dto.ServiceInfo) *InfoHandler {
	return &InfoHandler{info: info}
}

func (h *InfoHandler) Root(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, h.info.Service+" is running", h.info)
}

func (h *InfoHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
