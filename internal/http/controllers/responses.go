package controllers

import (
	"net/http"

	"auto360_server/internal/http/middleware"
	"auto360_server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse is the JSON envelope for failed requests
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse is the JSON envelope for successful requests
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   int         `json:"count,omitempty"`
}

func errorJSON(c *gin.Context, status int, errorText, message string) {
	c.JSON(status, ErrorResponse{
		Success: false,
		Error:   errorText,
		Message: message,
	})
}

// requireStoreMember resolves the authenticated user and checks membership
// in the requested store. Writes the error response itself; callers bail
// out when ok is false. store_id must be a uuid.
func requireStoreMember(c *gin.Context, storeID string) (*models.User, models.StoreRole, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		errorJSON(c, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return nil, "", false
	}

	if _, err := uuid.Parse(storeID); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid store_id", "store_id must be a valid uuid")
		return nil, "", false
	}

	role, member := user.RoleInStore(storeID)
	if !member {
		errorJSON(c, http.StatusForbidden, "Forbidden", "You are not a member of this store")
		return nil, "", false
	}
	return user, role, true
}

// requireStoreAdmin additionally requires an ADMIN or SUPER_ADMIN role
func requireStoreAdmin(c *gin.Context, storeID string) (*models.User, bool) {
	user, role, ok := requireStoreMember(c, storeID)
	if !ok {
		return nil, false
	}
	if !role.CanManageCatalog() {
		errorJSON(c, http.StatusForbidden, "Forbidden", "ADMIN or SUPER_ADMIN role required for this store")
		return nil, false
	}
	return user, true
}
