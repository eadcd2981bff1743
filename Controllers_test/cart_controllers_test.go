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

func setupTestDBForCart(t *testing.T) *gorm.DB {
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

	if err := db.AutoMigrate(&models.MenuItem{}, &models.CartItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupCartRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cartCtrl := controllers.NewCartController(db)
	router.GET("/api/cart", cartCtrl.GetCart)
	router.POST("/api/cart", cartCtrl.AddToCart)
	router.DELETE("/api/cart/:id", cartCtrl.RemoveFromCart)
	router.DELETE("/api/cart", cartCtrl.ClearCart)
	return router
}

// sessionCookie extracts the cart session cookie issued on first contact so
// follow-up requests act on the same cart.
func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "cart_session" {
			return cookie
		}
	}
	t.Fatal("cart_session cookie not set")
	return nil
}

func addToCart(router *gin.Engine, menuItemID uint, quantity int, cookie *http.Cookie) *httptest.ResponseRecorder {
	payload := map[string]interface{}{
		"menuItemId": menuItemID,
		"quantity":   quantity,
	}
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/api/cart", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCartAddUpsertsQuantity(t *testing.T) {
	db := setupTestDBForCart(t)
	router := setupCartRouter(db)

	dish := models.MenuItem{
		Name: "Veg Hakka Noodles", Description: "Noodles", Price: 150,
		Category: "noodle", IsVeg: true, Image: "https://example.com/n.jpg", IsAvailable: true,
	}
	assert.NoError(t, db.Create(&dish).Error)

	w := addToCart(router, dish.ID, 1, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)

	w = addToCart(router, dish.ID, 2, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.CartItem `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Quantity)

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCartAddUnknownMenuItem(t *testing.T) {
	db := setupTestDBForCart(t)
	router := setupCartRouter(db)

	w := addToCart(router, 9999, 1, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartLifecycle(t *testing.T) {
	db := setupTestDBForCart(t)
	router := setupCartRouter(db)

	dish := models.MenuItem{
		Name: "Chicken Momos", Description: "Momos", Price: 200,
		Category: "momos", IsVeg: false, Image: "https://example.com/m.jpg", IsAvailable: true,
	}
	assert.NoError(t, db.Create(&dish).Error)

	w := addToCart(router, dish.ID, 2, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)

	var addResp struct {
		Data models.CartItem `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &addResp))

	// List the cart.
	req, _ := http.NewRequest("GET", "/api/cart", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Data []models.CartItem `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Data, 1)
	assert.Equal(t, "Chicken Momos", listResp.Data[0].MenuItem.Name)

	// Remove the row.
	req, _ = http.NewRequest("DELETE", fmt.Sprintf("/api/cart/%d", addResp.Data.ID), nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Removing again -> 404.
	req, _ = http.NewRequest("DELETE", fmt.Sprintf("/api/cart/%d", addResp.Data.ID), nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartClear(t *testing.T) {
	db := setupTestDBForCart(t)
	router := setupCartRouter(db)

	dish := models.MenuItem{
		Name: "Veg Momos", Description: "Momos", Price: 160,
		Category: "momos", IsVeg: true, Image: "https://example.com/vm.jpg", IsAvailable: true,
	}
	assert.NoError(t, db.Create(&dish).Error)

	w := addToCart(router, dish.ID, 1, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)

	req, _ := http.NewRequest("DELETE", "/api/cart", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/api/cart", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Data []models.CartItem `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Empty(t, listResp.Data)
}
