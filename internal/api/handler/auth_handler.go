package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/campus-events/pkg/response"
)

type registerRequest struct {
    Email    string `json:"email" binding:"required,email"`
    Password string `json:"password" binding:"required,min=6"`
    Role     string `json:"role" binding:"required,oneof=organizer student"`
}

type loginRequest struct {
    Email    string `json:"email" binding:"required,email"`
    Password string `json:"password" binding:"required"`
    Role     string `json:"role" binding:"required,oneof=organizer student"`
}

// Register 注册
// @Summary 注册账号（organizer / student）
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body registerRequest true "注册信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
    var req registerRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    u, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.Role)
    if err != nil {
        fail(c, err)
        return
    }
    response.Created(c, gin.H{"id": u.ID, "email": u.Email, "role": u.Role})
}

// Login 登录
// @Summary 登录并签发 token
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
    var req loginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    token, u, err := h.authService.Login(c.Request.Context(), req.Email, req.Password, req.Role)
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"token": token, "user": gin.H{"id": u.ID, "email": u.Email, "role": u.Role}})
}
