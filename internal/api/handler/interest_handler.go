package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/campus-events/internal/middleware"
    "github.com/d60-Lab/campus-events/internal/tags"
    "github.com/d60-Lab/campus-events/pkg/response"
)

type interestsRequest struct {
    // 整套替换，传空数组表示清空订阅（字段缺失视为非法，空数组合法）
    Interests *[]string `json:"interests" binding:"required"`
}

// GetInterests 查询自己的兴趣标签
// @Summary 查询兴趣标签
// @Tags 用户
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/user/interests [get]
func (h *Handler) GetInterests(c *gin.Context) {
    list, err := h.interestService.Get(c.Request.Context(), middleware.UserID(c))
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"interests": list})
}

// UpdateInterests 整体替换兴趣标签（单事务，读方不会看到半新半旧）
// @Summary 更新兴趣标签
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body interestsRequest true "标签列表"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/user/interests [put]
func (h *Handler) UpdateInterests(c *gin.Context) {
    var req interestsRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, "interests must be an array of strings")
        return
    }
    if err := h.interestService.Replace(c.Request.Context(), middleware.UserID(c), *req.Interests); err != nil {
        fail(c, err)
        return
    }
    response.Success(c, nil)
}

// ListTags 标签目录（分类 → 标签）
// @Summary 标签目录
// @Tags 用户
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/tags [get]
func (h *Handler) ListTags(c *gin.Context) {
    response.Success(c, gin.H{"categories": tags.Categories()})
}
