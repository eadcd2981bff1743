package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/airavatatech/mings-backend/services"
	"github.com/airavatatech/mings-backend/utils"
)

type WhatsAppController struct {
	Settings *services.WhatsAppService
}

func NewWhatsAppController(db *gorm.DB) *WhatsAppController {
	return &WhatsAppController{Settings: services.NewWhatsAppService(db)}
}

// GetSettings -> GET /api/whatsapp-settings (admin)
func (wc *WhatsAppController) GetSettings(c *gin.Context) {
	settings, err := wc.Settings.Get()
	if err != nil {
		if errors.Is(err, services.ErrSettingsNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "WhatsApp settings", settings)
}

// SaveSettings -> POST /api/whatsapp-settings (admin)
func (wc *WhatsAppController) SaveSettings(c *gin.Context) {
	type reqBody struct {
		APIKey        string `json:"apiKey" binding:"required"`
		PhoneNumberID string `json:"phoneNumberId" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	settings, err := wc.Settings.Save(req.APIKey, req.PhoneNumberID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "WhatsApp settings saved", settings)
}
