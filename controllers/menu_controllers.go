package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/airavatatech/mings-backend/models"
	"github.com/airavatatech/mings-backend/services"
	"github.com/airavatatech/mings-backend/utils"
)

type MenuController struct {
	Catalog *services.CatalogService
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{Catalog: services.NewCatalogService(db)}
}

// GetAllMenuItems -> GET /api/menu-items
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	items := mc.Catalog.GetMenuItems()
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetCategories -> GET /api/categories
func (mc *MenuController) GetCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of categories", mc.Catalog.Categories())
}

// GetMenuItemsByCategory -> GET /api/menu-items/category/:category
func (mc *MenuController) GetMenuItemsByCategory(c *gin.Context) {
	category := c.Param("category")

	items, err := mc.Catalog.GetMenuItemsByCategory(category)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menu items for category: "+category, items)
}

// GetMenuItemByID -> GET /api/menu-items/:id
func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}

	item, err := mc.Catalog.GetMenuItem(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// CreateMenuItem -> POST /api/menu-items (admin)
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	type reqBody struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description" binding:"required"`
		Price       float64 `json:"price" binding:"required,gt=0"`
		Category    string  `json:"category" binding:"required"`
		IsVeg       *bool   `json:"isVeg" binding:"required"`
		Image       string  `json:"image" binding:"required,url"`
		IsAvailable *bool   `json:"isAvailable"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		IsVeg:       *req.IsVeg,
		Image:       req.Image,
		IsAvailable: isAvailable,
	}

	if err := mc.Catalog.AddMenuItem(&item); err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}
