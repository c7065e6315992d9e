package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kanbanlive/internal/auth"
	"kanbanlive/internal/repository"
)

type UserHandler struct {
	userRepo repository.UserRepositoryInterface
	verifier auth.Verifier
}

func NewUserHandler(userRepo repository.UserRepositoryInterface, verifier auth.Verifier) *UserHandler {
	return &UserHandler{userRepo: userRepo, verifier: verifier}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Login checks the credentials and reports the user's profile and
// role. Unknown user and wrong password produce the same response.
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx, cancel := storageContext(c)
	defer cancel()

	user, err := h.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}
	if user == nil || h.verifier.Verify(user.HashedPassword, req.Password) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "帳號或密碼錯誤"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Username: user.Username,
		FullName: user.FullName,
		Role:     auth.RoleFor(user.Username),
	})
}

// CheckDB reports how many users exist and their usernames. Kept as a
// quick connectivity probe for the database.
func (h *UserHandler) CheckDB(c *gin.Context) {
	ctx, cancel := storageContext(c)
	defer cancel()

	users, err := h.userRepo.List(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	usernames := make([]string, 0, len(users))
	for _, user := range users {
		usernames = append(usernames, user.Username)
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": usernames})
}
