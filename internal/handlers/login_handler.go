package handlers

import (
	"net/http"
	"os"

	"inventory-pos/internal/auth"
	"inventory-pos/internal/models"
	"inventory-pos/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users *service.UserService
	roles *service.RoleService
}

func NewAuthHandler(users *service.UserService, roles *service.RoleService) *AuthHandler {
	return &AuthHandler{users: users, roles: roles}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	user, err := h.users.Authenticate(input.Username, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Role.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"role":      user.Role.Name,
		"username":  user.Username,
		"full_name": user.FullName,
	})
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required"`
	FullName string `json:"full_name"`
}

// Register is only open when ALLOW_REGISTRATION is set; new accounts
// always start as employees.
func (h *AuthHandler) Register(c *gin.Context) {
	if os.Getenv("ALLOW_REGISTRATION") != "true" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Registration is disabled"})
		return
	}

	var input RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	role, err := h.roles.FindByName(models.RoleEmployee)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.users.Create(input.Username, input.Password, input.Email, input.FullName, role.ID, true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
