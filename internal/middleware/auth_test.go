package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/campus-events/internal/model"
    "github.com/d60-Lab/campus-events/pkg/jwtauth"
)

const testSecret = "test-secret"

func testRouter() *gin.Engine {
    gin.SetMode(gin.TestMode)
    r := gin.New()
    g := r.Group("", JWTAuth(testSecret))
    g.GET("/whoami", func(c *gin.Context) {
        c.JSON(http.StatusOK, gin.H{"id": UserID(c)})
    })
    g.GET("/organizer-only", RequireRole(model.RoleOrganizer), func(c *gin.Context) {
        c.Status(http.StatusOK)
    })
    return r
}

func doReq(r *gin.Engine, token string) *httptest.ResponseRecorder {
    req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
    if token != "" {
        req.Header.Set("Authorization", "Bearer "+token)
    }
    w := httptest.NewRecorder()
    r.ServeHTTP(w, req)
    return w
}

func TestJWTAuth(t *testing.T) {
    r := testRouter()

    w := doReq(r, "")
    assert.Equal(t, http.StatusUnauthorized, w.Code)

    w = doReq(r, "garbage")
    assert.Equal(t, http.StatusUnauthorized, w.Code)

    token, err := jwtauth.Generate(testSecret, time.Hour, "u1", model.RoleStudent)
    require.NoError(t, err)
    w = doReq(r, token)
    assert.Equal(t, http.StatusOK, w.Code)
    assert.Contains(t, w.Body.String(), "u1")

    // 过期 token 拒绝
    expired, err := jwtauth.Generate(testSecret, -time.Minute, "u1", model.RoleStudent)
    require.NoError(t, err)
    w = doReq(r, expired)
    assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
    r := testRouter()

    student, err := jwtauth.Generate(testSecret, time.Hour, "u1", model.RoleStudent)
    require.NoError(t, err)
    organizer, err := jwtauth.Generate(testSecret, time.Hour, "u2", model.RoleOrganizer)
    require.NoError(t, err)

    req := httptest.NewRequest(http.MethodGet, "/organizer-only", nil)
    req.Header.Set("Authorization", "Bearer "+student)
    w := httptest.NewRecorder()
    r.ServeHTTP(w, req)
    assert.Equal(t, http.StatusForbidden, w.Code)

    req = httptest.NewRequest(http.MethodGet, "/organizer-only", nil)
    req.Header.Set("Authorization", "Bearer "+organizer)
    w = httptest.NewRecorder()
    r.ServeHTTP(w, req)
    assert.Equal(t, http.StatusOK, w.Code)
}
