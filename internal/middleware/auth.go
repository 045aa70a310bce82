package middleware

import (
    "strings"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/campus-events/pkg/jwtauth"
    "github.com/d60-Lab/campus-events/pkg/response"
)

const (
    // CtxUserID / CtxUserRole 经认证后写入 gin.Context
    CtxUserID   = "user_id"
    CtxUserRole = "user_role"
)

// JWTAuth 解析 Authorization: Bearer <token>，注入调用者身份
func JWTAuth(secret string) gin.HandlerFunc {
    return func(c *gin.Context) {
        h := c.GetHeader("Authorization")
        if !strings.HasPrefix(h, "Bearer ") {
            response.Unauthorized(c, "missing or malformed authorization header")
            return
        }
        claims, err := jwtauth.Parse(secret, strings.TrimPrefix(h, "Bearer "))
        if err != nil {
            response.Unauthorized(c, "invalid or expired token")
            return
        }
        c.Set(CtxUserID, claims.UserID)
        c.Set(CtxUserRole, claims.Role)
        c.Next()
    }
}

// RequireRole 角色闸门，需在 JWTAuth 之后
func RequireRole(role string) gin.HandlerFunc {
    return func(c *gin.Context) {
        if c.GetString(CtxUserRole) != role {
            response.Forbidden(c, "insufficient role")
            return
        }
        c.Next()
    }
}

// UserID 取当前调用者 id（所有查询必须用它限定范围）
func UserID(c *gin.Context) string { return c.GetString(CtxUserID) }
