package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/campus-events/internal/middleware"
    "github.com/d60-Lab/campus-events/pkg/response"
)

// TrackView 浏览打点；同一学生只记首次
// @Summary 活动浏览打点
// @Tags 互动
// @Param eventId path string true "活动ID"
// @Success 200 {object} response.Response
// @Router /api/v1/engagement/view/{eventId} [post]
func (h *Handler) TrackView(c *gin.Context) {
    isNew, err := h.engagementService.TrackView(c.Request.Context(), c.Param("eventId"), middleware.UserID(c))
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"is_new_view": isNew})
}

// TrackSave 收藏（幂等）
// @Summary 收藏活动
// @Tags 互动
// @Param eventId path string true "活动ID"
// @Success 200 {object} response.Response
// @Router /api/v1/engagement/save/{eventId} [post]
func (h *Handler) TrackSave(c *gin.Context) {
    if err := h.engagementService.TrackSave(c.Request.Context(), c.Param("eventId"), middleware.UserID(c)); err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"saved": true})
}

// RemoveSave 取消收藏（未收藏时为 no-op）
// @Summary 取消收藏
// @Tags 互动
// @Param eventId path string true "活动ID"
// @Success 200 {object} response.Response
// @Router /api/v1/engagement/save/{eventId} [delete]
func (h *Handler) RemoveSave(c *gin.Context) {
    if err := h.engagementService.RemoveSave(c.Request.Context(), c.Param("eventId"), middleware.UserID(c)); err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"saved": false})
}

// EventMetrics 单活动互动指标（仅活动归属者）
// @Summary 活动互动指标
// @Tags 互动
// @Param eventId path string true "活动ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/engagement/metrics/{eventId} [get]
func (h *Handler) EventMetrics(c *gin.Context) {
    m, err := h.engagementService.Metrics(c.Request.Context(), middleware.UserID(c), c.Param("eventId"))
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"event_id": c.Param("eventId"), "metrics": m})
}

// OrganizerSummary 名下全部活动的互动汇总
// @Summary 互动汇总
// @Tags 互动
// @Success 200 {object} response.Response
// @Router /api/v1/engagement/summary [get]
func (h *Handler) OrganizerSummary(c *gin.Context) {
    s, err := h.engagementService.Summary(c.Request.Context(), middleware.UserID(c))
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, s)
}
