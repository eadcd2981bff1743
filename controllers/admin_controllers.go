package controllers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/airavatatech/mings-backend/utils"
)

const adminTokenCookie = "admin_token"

// AdminController gates the dashboard behind a single configured password.
// The password comes from ADMIN_PASSWORD; when unset, admin access is
// disabled entirely.
type AdminController struct {
	passwordHash []byte
}

func NewAdminController() *AdminController {
	ac := &AdminController{}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		utils.ErrorLogger.Println("Warning: ADMIN_PASSWORD is not set, admin access is disabled")
		return ac
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.ErrorLogger.Printf("Error hashing admin password: %v", err)
		return ac
	}
	ac.passwordHash = hash

	return ac
}

// Login -> POST /api/admin/login
func (ac *AdminController) Login(c *gin.Context) {
	if len(ac.passwordHash) == 0 {
		utils.RespondError(c, http.StatusServiceUnavailable, errors.New("admin access is not configured"))
		return
	}

	type reqBody struct {
		Password string `json:"password" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword(ac.passwordHash, []byte(req.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid password"))
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.SetCookie(adminTokenCookie, token, 24*3600, "/", "", false, true)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{"token": token})
}

// Logout -> POST /api/admin/logout
func (ac *AdminController) Logout(c *gin.Context) {
	if token, err := c.Cookie(adminTokenCookie); err == nil && token != "" {
		utils.BlacklistToken(token)
	}

	c.SetCookie(adminTokenCookie, "", -1, "/", "", false, true)
	utils.RespondJSON(c, http.StatusOK, "Logout successful", nil)
}

// Check -> GET /api/admin/check
func (ac *AdminController) Check(c *gin.Context) {
	isAdmin := false

	if token, err := c.Cookie(adminTokenCookie); err == nil && token != "" {
		if !utils.IsTokenBlacklisted(token) {
			if claims, err := utils.ParseAdminToken(token); err == nil {
				isAdmin = claims.IsAdmin
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}
