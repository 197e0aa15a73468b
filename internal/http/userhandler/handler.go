package userhandler

import (
	"errors"
	"net/http"

	"auctionhub/internal/services/identity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc identity.IIdentityService
}

func New(svc identity.IIdentityService) *Handler { return &Handler{svc: svc} }

func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/api/users/register", h.register)
	r.POST("/api/users/login", h.login)
}

// @Summary		Register a user
// @Tags			Users
// @Param			body	body		RegisterBody	true	"Registration payload"
// @Success		201		{object}	UserResponse
// @Failure		409		{object}	MessageResponse
// @Router			/api/users/register [post]
func (h *Handler) register(c *gin.Context) {
	var body RegisterBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}

	u, err := h.svc.Register(c.Request.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrEmailTaken):
			c.JSON(http.StatusConflict, MessageResponse{Message: err.Error()})
		case errors.Is(err, identity.ErrValidation):
			c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		default:
			zap.L().Error("register_failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Registration failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, UserResponse{Message: "User registered successfully", User: u})
}

// @Summary		Log a user in
// @Description	Unknown email returns 404; a wrong password returns 400.
// @Tags			Users
// @Param			body	body		LoginBody	true	"Login payload"
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	MessageResponse
// @Failure		404		{object}	MessageResponse
// @Router			/api/users/login [post]
func (h *Handler) login(c *gin.Context) {
	var body LoginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}

	u, err := h.svc.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrUserNotFound):
			c.JSON(http.StatusNotFound, MessageResponse{Message: "User not found"})
		case errors.Is(err, identity.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid credentials"})
		default:
			zap.L().Error("login_failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Login failed"})
		}
		return
	}
	c.JSON(http.StatusOK, UserResponse{Message: "Login successful", User: u})
}
