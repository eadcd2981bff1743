package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/airavatatech/mings-backend/services"
	"github.com/airavatatech/mings-backend/utils"
)

const cartSessionCookie = "cart_session"

type CartController struct {
	Cart *services.CartService
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{Cart: services.NewCartService(db)}
}

// cartSession returns the caller's cart session id, issuing a new one as an
// HttpOnly cookie on first contact.
func cartSession(c *gin.Context) string {
	if sessionID, err := c.Cookie(cartSessionCookie); err == nil && sessionID != "" {
		return sessionID
	}

	sessionID := uuid.NewString()
	c.SetCookie(cartSessionCookie, sessionID, 30*24*3600, "/", "", false, true)
	return sessionID
}

// GetCart -> GET /api/cart
func (cc *CartController) GetCart(c *gin.Context) {
	items, err := cc.Cart.GetItems(cartSession(c))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart items", items)
}

// AddToCart -> POST /api/cart
func (cc *CartController) AddToCart(c *gin.Context) {
	type reqBody struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
		Quantity   int  `json:"quantity"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Quantity < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("quantity must be positive"))
		return
	}

	item, err := cc.Cart.AddItem(cartSession(c), req.MenuItemID, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item added to cart", item)
}

// RemoveFromCart -> DELETE /api/cart/:id
func (cc *CartController) RemoveFromCart(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid cart item id"))
		return
	}

	if err := cc.Cart.RemoveItem(cartSession(c), uint(id)); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item removed from cart", gin.H{"id": id})
}

// ClearCart -> DELETE /api/cart
func (cc *CartController) ClearCart(c *gin.Context) {
	if err := cc.Cart.Clear(cartSession(c)); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", nil)
}
