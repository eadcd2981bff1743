package services

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/airavatatech/mings-backend/models"
	"github.com/airavatatech/mings-backend/utils"
)

var (
	ErrInvalidCategory  = errors.New("invalid category")
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// CatalogService reads the menu catalog. Items live in per-category
// partitions; reads merge the partitions and apply the canonical display
// sort afterwards.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// GetMenuItems returns every item across all category partitions, sorted.
// A partition that fails to read contributes zero items; the error is logged
// and the remaining partitions are still served.
func (cs *CatalogService) GetMenuItems() []models.MenuItem {
	allItems := make([]models.MenuItem, 0)

	for _, category := range models.Categories {
		var items []models.MenuItem
		if err := cs.DB.Where("category = ?", category).Find(&items).Error; err != nil {
			utils.ErrorLogger.Printf("Error reading category %q: %v", category, err)
			continue
		}
		allItems = append(allItems, items...)
	}

	SortMenuItems(allItems)
	return allItems
}

// GetMenuItemsByCategory returns one partition, sorted. A category outside
// the fixed set is a usage error.
func (cs *CatalogService) GetMenuItemsByCategory(category string) ([]models.MenuItem, error) {
	if !models.IsValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	var items []models.MenuItem
	if err := cs.DB.Where("category = ?", category).Find(&items).Error; err != nil {
		return nil, err
	}

	SortMenuItems(items)
	return items, nil
}

func (cs *CatalogService) GetMenuItem(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := cs.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// AddMenuItem inserts a dish into its category partition.
func (cs *CatalogService) AddMenuItem(item *models.MenuItem) error {
	if !models.IsValidCategory(item.Category) {
		return ErrInvalidCategory
	}
	if item.Price <= 0 {
		return errors.New("price must be positive")
	}
	return cs.DB.Create(item).Error
}

func (cs *CatalogService) Categories() []string {
	return models.Categories
}

// SortMenuItems applies the canonical display order in place:
// veg before non-veg, then name buckets (veg/chicken/prawn prefixes before
// the rest), then lowercase names compared with an English collator. The
// order is total, so the result does not depend on merge order.
func SortMenuItems(items []models.MenuItem) {
	col := collate.New(language.English)

	sort.SliceStable(items, func(i, j int) bool {
		return menuItemLess(col, items[i], items[j])
	})
}

func menuItemLess(col *collate.Collator, a, b models.MenuItem) bool {
	if a.IsVeg != b.IsVeg {
		return a.IsVeg
	}

	aName := strings.ToLower(a.Name)
	bName := strings.ToLower(b.Name)

	aBucket := nameBucket(aName)
	bBucket := nameBucket(bName)
	if aBucket != bBucket {
		return aBucket < bBucket
	}

	return col.CompareString(aName, bName) < 0
}

func nameBucket(name string) int {
	switch {
	case strings.HasPrefix(name, "veg"):
		return 1
	case strings.HasPrefix(name, "chicken"):
		return 2
	case strings.HasPrefix(name, "prawn"):
		return 3
	default:
		return 4
	}
}
