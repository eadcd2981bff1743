package models

import "time"

// WhatsAppSetting holds the notification gateway credentials. The table is a
// singleton; saves update the existing row instead of inserting a second one.
type WhatsAppSetting struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	APIKey        string    `gorm:"type:varchar(255);not null" json:"apiKey"`
	PhoneNumberID string    `gorm:"type:varchar(100);not null" json:"phoneNumberId"`
	CreatedAt     time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"not null" json:"updatedAt"`
}
