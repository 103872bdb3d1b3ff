package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mghazyfawazh/outlines/internal/middleware"
)

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.APIKeyAuth("s3cret"))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for key, want := range map[string]int{
		"":       http.StatusUnauthorized,
		"wrong":  http.StatusUnauthorized,
		"s3cret": http.StatusNoContent,
	} {
		req, _ := http.NewRequest("GET", "/x", nil)
		if key != "" {
			req.Header.Set(middleware.APIKeyHeader, key)
		}
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		assert.Equal(t, want, resp.Code, key)
	}
}
