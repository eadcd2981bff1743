package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/airavatatech/mings-backend/controllers"
	"github.com/airavatatech/mings-backend/models"
	"github.com/airavatatech/mings-backend/utils"
)

func setupTestDBForMenus(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.MenuItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupMenuRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	menuCtrl := controllers.NewMenuController(db)
	router.GET("/api/menu-items", menuCtrl.GetAllMenuItems)
	router.GET("/api/menu-items/category/:category", menuCtrl.GetMenuItemsByCategory)
	router.GET("/api/menu-items/:id", menuCtrl.GetMenuItemByID)
	router.POST("/api/menu-items", menuCtrl.CreateMenuItem)
	return router
}

func seedMenuItem(t *testing.T, db *gorm.DB, name, category string, isVeg bool) models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		Name:        name,
		Description: name,
		Price:       12.5,
		Category:    category,
		IsVeg:       isVeg,
		Image:       "https://example.com/dish.jpg",
		IsAvailable: true,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}
	return item
}

func TestGetAllMenuItemsSorted(t *testing.T) {
	db := setupTestDBForMenus(t)
	router := setupMenuRouter(db)

	seedMenuItem(t, db, "Chicken Manchurian", "gravies", false)
	seedMenuItem(t, db, "Apple Dessert", "desserts", true)
	seedMenuItem(t, db, "Veg Manchurian", "gravies", true)

	req, _ := http.NewRequest("GET", "/api/menu-items", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status bool              `json:"status"`
		Data   []models.MenuItem `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.Len(t, resp.Data, 3)
	assert.Equal(t, "Veg Manchurian", resp.Data[0].Name)
	assert.Equal(t, "Apple Dessert", resp.Data[1].Name)
	assert.Equal(t, "Chicken Manchurian", resp.Data[2].Name)
}

func TestGetMenuItemsByCategoryEndpoint(t *testing.T) {
	db := setupTestDBForMenus(t)
	router := setupMenuRouter(db)

	seedMenuItem(t, db, "Sweet Corn Soup", "soups", true)
	seedMenuItem(t, db, "Veg Momos", "momos", true)

	req, _ := http.NewRequest("GET", "/api/menu-items/category/soups", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.MenuItem `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "Sweet Corn Soup", resp.Data[0].Name)
}

func TestGetMenuItemsByInvalidCategory(t *testing.T) {
	db := setupTestDBForMenus(t)
	router := setupMenuRouter(db)

	req, _ := http.NewRequest("GET", "/api/menu-items/category/pizza", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMenuItemByID(t *testing.T) {
	db := setupTestDBForMenus(t)
	router := setupMenuRouter(db)

	item := seedMenuItem(t, db, "Thai Green Curry", "thai", true)

	req, _ := http.NewRequest("GET", fmt.Sprintf("/api/menu-items/%d", item.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/api/menu-items/9999", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMenuItem(t *testing.T) {
	db := setupTestDBForMenus(t)
	router := setupMenuRouter(db)

	payload := map[string]interface{}{
		"name":        "Veg Schezwan Rice",
		"description": "Spicy fried rice",
		"price":       180.0,
		"category":    "rice",
		"isVeg":       true,
		"image":       "https://example.com/schezwan.jpg",
	}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/api/menu-items", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Unknown category is rejected.
	payload["category"] = "pizza"
	body, _ = json.Marshal(payload)
	req, _ = http.NewRequest("POST", "/api/menu-items", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
