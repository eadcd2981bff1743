package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/airavatatech/mings-backend/models"
)

var ErrCartItemNotFound = errors.New("cart item not found")

// CartService manages per-session carts. Each browser session gets its own
// cart keyed by an opaque session id, so customers never see each other's
// items.
type CartService struct {
	DB *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{DB: db}
}

func (cs *CartService) GetItems(sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := cs.DB.Preload("MenuItem").
		Where("session_id = ?", sessionID).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem upserts a cart row in one statement: inserting a second row for a
// menu item the session already has bumps its quantity instead.
func (cs *CartService) AddItem(sessionID string, menuItemID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	var menuItem models.MenuItem
	if err := cs.DB.First(&menuItem, menuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	item := models.CartItem{
		SessionID:  sessionID,
		MenuItemID: menuItemID,
		Quantity:   quantity,
	}

	err := cs.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "menu_item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", quantity),
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	var saved models.CartItem
	if err := cs.DB.Preload("MenuItem").
		Where("session_id = ? AND menu_item_id = ?", sessionID, menuItemID).
		First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (cs *CartService) RemoveItem(sessionID string, id uint) error {
	result := cs.DB.Where("session_id = ?", sessionID).Delete(&models.CartItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (cs *CartService) Clear(sessionID string) error {
	return cs.DB.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
}
