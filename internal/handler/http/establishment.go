package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/establishment"
	"github.com/holiday-manager/ponto-backend-go/internal/handler/http/response"
)

type EstablishmentHandler interface {
	GetMy(w http.ResponseWriter, r *http.Request)
	UpdateMy(w http.ResponseWriter, r *http.Request)
}

type establishmentHandlerImpl struct {
	establishmentService establishment.EstablishmentService
}

func NewEstablishmentHandler(establishmentService establishment.EstablishmentService) EstablishmentHandler {
	return &establishmentHandlerImpl{establishmentService: establishmentService}
}

// GetMy handles GET /establishments/my
func (h *establishmentHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	result, err := h.establishmentService.GetMy(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateMy handles PUT /establishments/my
func (h *establishmentHandlerImpl) UpdateMy(w http.ResponseWriter, r *http.Request) {
	var req establishment.UpdateEstablishmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateMy decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.establishmentService.UpdateMy(r.Context(), req)
	if err != nil {
		slog.Error("UpdateMy service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Establishment updated successfully", result)
}
