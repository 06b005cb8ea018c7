package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhub/internal/adapter/http/helper"
	"taskhub/internal/adapter/http/middleware"
	"taskhub/internal/adapter/http/validation"
	"taskhub/internal/core/apperr"
	"taskhub/internal/core/model/request"
	"taskhub/internal/core/model/response"
	"taskhub/internal/core/port"
	"taskhub/internal/core/util"
)

type UserHandler struct {
	auth  port.AuthService
	users port.UserService
}

func NewUserHandler(auth port.AuthService, users port.UserService) *UserHandler {
	return &UserHandler{auth: auth, users: users}
}

// Register creates an account and signs the new user in.
func (h *UserHandler) Register(c *gin.Context) {
	req, err := util.ParamsToMap[request.RegisterRequest](c)
	if err != nil {
		helper.Error(c, apperr.Validation("invalid request body", nil))
		return
	}

	if err := validation.Check(&req); err != nil {
		helper.Error(c, err)
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		helper.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.AuthResponse{
		Success: true,
		User:    response.NewUserResponse(user),
		Token:   token,
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	req, err := util.ParamsToMap[request.LoginRequest](c)
	if err != nil {
		helper.Error(c, apperr.Validation("invalid request body", nil))
		return
	}

	if err := validation.Check(&req); err != nil {
		helper.Error(c, err)
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		helper.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.AuthResponse{
		Success: true,
		User:    response.NewUserResponse(user),
		Token:   token,
	})
}

// Profile returns the caller's own record.
func (h *UserHandler) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		helper.Error(c, apperr.InvalidToken())
		return
	}

	resp := response.NewUserResponse(user)
	resp.CreatedAt = &user.CreatedAt

	c.JSON(http.StatusOK, response.ProfileResponse{
		Success: true,
		User:    resp,
	})
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		helper.Error(c, err)
		return
	}

	list := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		list = append(list, response.NewUserResponse(user))
	}

	c.JSON(http.StatusOK, response.UserListResponse{
		Success: true,
		Count:   len(list),
		Users:   list,
	})
}
