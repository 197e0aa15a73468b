package userhandler

import "auctionhub/internal/models"

type RegisterBody struct {
	Name     string `json:"name"     binding:"required"       example:"Ada"`
	Email    string `json:"email"    binding:"required,email" example:"ada@example.com"`
	Password string `json:"password" binding:"required,min=6"`
} // @name RegisterRequest

type LoginBody struct {
	Email    string `json:"email"    binding:"required,email" example:"ada@example.com"`
	Password string `json:"password" binding:"required"`
} // @name LoginRequest

type UserResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
} // @name UserResponse

type MessageResponse struct {
	Message string `json:"message"`
} // @name UserMessageResponse
