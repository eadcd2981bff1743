package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/airavatatech/mings-backend/models"
)

var ErrSettingsNotFound = errors.New("whatsapp settings not found")

// WhatsAppService stores the notification gateway credentials as a singleton
// row: the first save inserts, every later save updates in place.
type WhatsAppService struct {
	DB *gorm.DB
}

func NewWhatsAppService(db *gorm.DB) *WhatsAppService {
	return &WhatsAppService{DB: db}
}

func (ws *WhatsAppService) Get() (*models.WhatsAppSetting, error) {
	var settings models.WhatsAppSetting
	if err := ws.DB.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}
	return &settings, nil
}

func (ws *WhatsAppService) Save(apiKey, phoneNumberID string) (*models.WhatsAppSetting, error) {
	var settings models.WhatsAppSetting
	err := ws.DB.First(&settings).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings.APIKey = apiKey
	settings.PhoneNumberID = phoneNumberID

	if err := ws.DB.Save(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}
