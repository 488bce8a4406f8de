package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("recovery middleware catches panic and returns 500 envelope", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery())

		router.GET("/panic", func(c *gin.Context) {
			panic("test panic")
		})

		req := httptest.NewRequest(http.MethodGet, "/panic", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal Server Error")
		assert.Contains(t, w.Body.String(), "status_code")
	})

	t.Run("recovery middleware does not affect normal requests", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery())

		router.GET("/normal", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "success"})
		})

		req := httptest.NewRequest(http.MethodGet, "/normal", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "success")
	})

	t.Run("recovery middleware catches panic from error", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery())

		router.GET("/panic-error", func(c *gin.Context) {
			panic(assert.AnError)
		})

		req := httptest.NewRequest(http.MethodGet, "/panic-error", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("CORS headers are present on responses", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS())
		router.GET("/resource", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{})
		})

		req := httptest.NewRequest(http.MethodGet, "/resource", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, PUT, PATCH, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
		assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("preflight OPTIONS request returns 204 No Content", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS())
		router.GET("/resource", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{})
		})

		req := httptest.NewRequest(http.MethodOptions, "/resource", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRequestLogging(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("request gets a UUID request ID header", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestLogging())
		router.GET("/resource", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{})
		})

		req := httptest.NewRequest(http.MethodGet, "/resource", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		requestID := w.Header().Get("X-Request-ID")
		_, err := uuid.Parse(requestID)
		assert.NoError(t, err, "X-Request-ID should be a valid UUID")
	})

	t.Run("each request gets a distinct ID", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestLogging())
		router.GET("/resource", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{})
		})

		ids := map[string]struct{}{}
		for i := 0; i < 5; i++ {
			req := httptest.NewRequest(http.MethodGet, "/resource", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			ids[w.Header().Get("X-Request-ID")] = struct{}{}
		}
		assert.Len(t, ids, 5)
	})
}
