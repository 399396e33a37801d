// internal/handlers/footer.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/neonmart/storefront-backend/internal/services"
	"github.com/neonmart/storefront-backend/internal/utils"
)

type FooterHandler struct {
	settingsService *services.SettingsService
}

func NewFooterHandler(settingsService *services.SettingsService) *FooterHandler {
	return &FooterHandler{settingsService: settingsService}
}

// GET /footer
func (h *FooterHandler) GetFooter(c *gin.Context) {
	footer, err := h.settingsService.GetFooter()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, footer)
}

// PUT /footer (admin)
func (h *FooterHandler) UpdateFooter(c *gin.Context) {
	var req services.UpdateFooterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	footer, err := h.settingsService.UpdateFooter(&req)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, footer)
}
