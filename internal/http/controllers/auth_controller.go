package controllers

import (
	"net/http"

	"auto360_server/internal/db"
	"auto360_server/internal/http/middleware"
	"auto360_server/internal/models"
	"auto360_server/pkg/colors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthController handles authentication related HTTP requests
type AuthController struct{}

// NewAuthController creates a new auth controller
func NewAuthController() *AuthController {
	return &AuthController{}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Token   string                 `json:"token,omitempty"`
	User    map[string]interface{} `json:"user,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// Login authenticates a user and returns a session token
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Error:   "Invalid request format",
			Message: err.Error(),
		})
		return
	}

	var user models.User
	if err := db.GetDB().Preload("Memberships.Store").Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, AuthResponse{
				Success: false,
				Error:   "Invalid credentials",
				Message: "Email or password is incorrect",
			})
			return
		}
		colors.PrintError("Database error during login: %v", err)
		c.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Error:   "Internal server error",
			Message: "Please try again later",
		})
		return
	}

	if !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, AuthResponse{
			Success: false,
			Error:   "Invalid credentials",
			Message: "Email or password is incorrect",
		})
		return
	}

	if err := user.GenerateToken(); err != nil {
		colors.PrintError("Failed to generate token for user %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Error:   "Failed to generate authentication token",
			Message: "Please try again later",
		})
		return
	}

	if err := db.GetDB().Save(&user).Error; err != nil {
		colors.PrintError("Failed to save token for user %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Error:   "Failed to save authentication token",
			Message: "Please try again later",
		})
		return
	}

	colors.PrintSuccess("User %s logged in successfully", req.Email)
	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   user.Token,
		User:    user.ToSafeUser(),
	})
}

// Logout invalidates the current session token
func (ac *AuthController) Logout(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		errorJSON(c, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	user.ClearToken()
	if err := db.GetDB().Model(&models.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{"token": nil, "token_exp": nil}).Error; err != nil {
		colors.PrintError("Failed to clear token for user %s: %v", user.Email, err)
		errorJSON(c, http.StatusInternalServerError, "Internal server error", "Failed to log out")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

// Me returns the authenticated user's profile and store memberships
func (ac *AuthController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		errorJSON(c, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	// Reload with store details for the console header
	var full models.User
	if err := db.GetDB().Preload("Memberships.Store").First(&full, "id = ?", user.ID).Error; err != nil {
		errorJSON(c, http.StatusInternalServerError, "Internal server error", "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    full.ToSafeUser(),
	})
}
