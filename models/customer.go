package models

import "time"

type Customer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	PhoneNumber string    `gorm:"type:varchar(15);not null;uniqueIndex" json:"phoneNumber"`
	DateOfBirth *string   `gorm:"type:varchar(10)" json:"dateOfBirth,omitempty"`
	Visits      int       `gorm:"not null;default:0" json:"visits"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}
