package handler

import (
	"errors"
	"net/http"
	"strconv"

	"inventory_api/internal/middleware"
	"inventory_api/internal/model"
	"inventory_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UserHandler handles account profile requests
type UserHandler struct {
	service service.UserService
	log     *logrus.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService, log *logrus.Logger) *UserHandler {
	return &UserHandler{service: s, log: log}
}

// Helper to get the authenticated user from context
func getAuthUser(c *gin.Context) (*model.User, error) {
	userVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return nil, errors.New("user not found in context")
	}
	user, ok := userVal.(*model.User)
	if !ok {
		return nil, errors.New("invalid user type in context")
	}
	return user, nil
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	authUser, err := getAuthUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	// Ownership is decided before the body is even looked at
	if authUser.ID != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized, this is not your account"})
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and username are required"})
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), authUser.ID, id, req.Name, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotYourAccount):
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized, this is not your account"})
		case errors.Is(err, service.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			h.log.WithError(err).Error("Failed to update user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"name":     user.Name,
		"username": user.Username,
	})
}

// RegisterUserRoutes registers user routes
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	userRoutes := rg.Group("/users")
	userRoutes.Use(authMW)
	{
		userRoutes.PUT("/:id", h.UpdateUser)
	}
}
