package models

import "time"

// CartItem is one row of a session's cart. The composite unique index keeps
// at most one row per (session, menu item); repeated adds bump Quantity.
type CartItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SessionID  string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_cart_session_item" json:"-"`
	MenuItemID uint      `gorm:"not null;uniqueIndex:idx_cart_session_item" json:"menuItemId"`
	MenuItem   MenuItem  `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"menuItem,omitempty"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt  time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"not null" json:"updatedAt"`
}
