package handler

import (
	"net/http"

	"clinic-management-backend/internal/middleware"
	"clinic-management-backend/internal/service"
	"clinic-management-backend/internal/session"
	"clinic-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
	sessions    *session.Store
}

func NewAuthHandler(authService *service.AuthService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=doctor patient receptionist"`
	Name     string `json:"name" binding:"max=100"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup handles account creation
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Signup(service.SignupInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
		Name:     req.Name,
		Email:    req.Email,
	})
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.CreatedResponse(c, user)
}

// Login authenticates a user, opens a server-side session and returns an
// access token for API clients
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), result.User.ID, result.User.Role)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	// Opaque session token as HttpOnly cookie
	c.SetCookie(
		middleware.SessionCookie,
		token,
		int(24*60*60), // maxAge in seconds (1 day)
		"/",
		"",    // domain (empty means current domain)
		false, // secure (set to true in production with HTTPS)
		true,  // httpOnly
	)

	utils.SuccessResponse(c, gin.H{
		"access_token": result.AccessToken,
		"user":         result.User,
	})
}

// Logout invalidates the server-side session and clears the cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err == nil {
		if err := h.sessions.Delete(c.Request.Context(), token); err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to logout")
			return
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	utils.MessageResponse(c, "You have been logged out.")
}
