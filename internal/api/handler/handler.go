package handler

import (
    "errors"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/campus-events/internal/service"
    "github.com/d60-Lab/campus-events/pkg/response"
)

// Handler 聚合各域服务，供路由注册
type Handler struct {
    authService       service.AuthService
    eventService      service.EventService
    interestService   service.InterestService
    inboxService      service.InboxService
    engagementService service.EngagementService
}

func New(
    authService service.AuthService,
    eventService service.EventService,
    interestService service.InterestService,
    inboxService service.InboxService,
    engagementService service.EngagementService,
) *Handler {
    return &Handler{
        authService:       authService,
        eventService:      eventService,
        interestService:   interestService,
        inboxService:      inboxService,
        engagementService: engagementService,
    }
}

// fail 业务错误到响应的统一映射
func fail(c *gin.Context, err error) {
    switch {
    case errors.Is(err, service.ErrInvalidTag):
        response.BadRequest(c, err.Error())
    case errors.Is(err, service.ErrNotFound):
        response.NotFound(c, err.Error())
    case errors.Is(err, service.ErrEmailTaken):
        response.BadRequest(c, err.Error())
    case errors.Is(err, service.ErrBadCredentials):
        response.Unauthorized(c, err.Error())
    default:
        response.InternalError(c, err)
    }
}
