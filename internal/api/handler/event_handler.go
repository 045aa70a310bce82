package handler

import (
    "time"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/campus-events/internal/middleware"
    "github.com/d60-Lab/campus-events/internal/service"
    "github.com/d60-Lab/campus-events/pkg/response"
)

type eventRequest struct {
    Title         string    `json:"title" binding:"required"`
    Description   string    `json:"description" binding:"required"`
    Location      string    `json:"location" binding:"required"`
    DateTime      time.Time `json:"date_time" binding:"required"`
    GoodsProvided []string  `json:"goods_provided"`
    Tags          []string  `json:"tags"`
}

func (r *eventRequest) toInput() service.EventInput {
    return service.EventInput{
        Title:         r.Title,
        Description:   r.Description,
        Location:      r.Location,
        DateTime:      r.DateTime,
        GoodsProvided: r.GoodsProvided,
        Tags:          r.Tags,
    }
}

// CreateEvent 发布活动，同步触发兴趣匹配扇出
// @Summary 发布活动
// @Tags 活动
// @Accept json
// @Produce json
// @Param request body eventRequest true "活动信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/events [post]
func (h *Handler) CreateEvent(c *gin.Context) {
    var req eventRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    e, err := h.eventService.Create(c.Request.Context(), middleware.UserID(c), req.toInput())
    if err != nil {
        fail(c, err)
        return
    }
    response.Created(c, e)
}

// UpdateEvent 编辑活动；标签集变化时对未通知过的学生重跑匹配
// @Summary 编辑活动
// @Tags 活动
// @Accept json
// @Produce json
// @Param id path string true "活动ID"
// @Param request body eventRequest true "活动信息"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/events/{id} [put]
func (h *Handler) UpdateEvent(c *gin.Context) {
    var req eventRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    e, err := h.eventService.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.toInput())
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, e)
}

// ListEvents 学生浏览全部活动（按活动时间升序）
// @Summary 活动列表
// @Tags 活动
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/events [get]
func (h *Handler) ListEvents(c *gin.Context) {
    list, err := h.eventService.ListAll(c.Request.Context())
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"events": list})
}

// ListMyEvents 组织者查看自己发布的活动
// @Summary 我的活动
// @Tags 活动
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/events/my [get]
func (h *Handler) ListMyEvents(c *gin.Context) {
    list, err := h.eventService.ListMine(c.Request.Context(), middleware.UserID(c))
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"events": list})
}

// DeleteEvent 删除自己的活动
// @Summary 删除活动
// @Tags 活动
// @Param id path string true "活动ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/events/{id} [delete]
func (h *Handler) DeleteEvent(c *gin.Context) {
    if err := h.eventService.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
        fail(c, err)
        return
    }
    response.Success(c, nil)
}
