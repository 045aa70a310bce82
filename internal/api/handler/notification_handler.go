package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/campus-events/internal/middleware"
    "github.com/d60-Lab/campus-events/pkg/response"
)

type markReadRequest struct {
    // 为空时将全部未读置为已读
    IDs []string `json:"ids"`
}

// ListNotifications 通知列表（最新在前，最多 100 条）
// @Summary 通知列表
// @Tags 通知
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/notifications [get]
func (h *Handler) ListNotifications(c *gin.Context) {
    list, err := h.inboxService.List(c.Request.Context(), middleware.UserID(c))
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"notifications": list})
}

// MarkNotificationsRead 置已读（全部或指定 id）
// @Summary 通知置已读
// @Tags 通知
// @Accept json
// @Produce json
// @Param request body markReadRequest true "可选的通知 id 列表"
// @Success 200 {object} response.Response
// @Router /api/v1/notifications/mark-read [post]
func (h *Handler) MarkNotificationsRead(c *gin.Context) {
    var req markReadRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, "ids must be an array of strings")
        return
    }
    var (
        updated int64
        err     error
    )
    if len(req.IDs) > 0 {
        updated, err = h.inboxService.MarkRead(c.Request.Context(), middleware.UserID(c), req.IDs)
    } else {
        updated, err = h.inboxService.MarkAllRead(c.Request.Context(), middleware.UserID(c))
    }
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"updated": updated})
}

// UnreadCount 未读数
// @Summary 未读通知数
// @Tags 通知
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/notifications/unread-count [get]
func (h *Handler) UnreadCount(c *gin.Context) {
    cnt, err := h.inboxService.UnreadCount(c.Request.Context(), middleware.UserID(c))
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"count": cnt})
}
