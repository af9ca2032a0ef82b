package handlers

import (
	"net/http"

	"github.com/leaflane/storefront-platform/internal/models"
	service "github.com/leaflane/storefront-platform/internal/services"
	"github.com/leaflane/storefront-platform/internal/utils"
	"github.com/leaflane/storefront-platform/internal/utils/response"
)

type VIPHandler struct {
	vipService service.VIPService
}

func NewVIPHandler(vipService service.VIPService) *VIPHandler {
	return &VIPHandler{vipService: vipService}
}

func (h *VIPHandler) ValidateCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.ValidateVIPRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, err)

			return
		}

		pass, err := h.vipService.ValidateCode(r.Context(), req.Code)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, pass)
	}
}
