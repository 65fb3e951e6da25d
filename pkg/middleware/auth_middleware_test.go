package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewAuthMiddleware(t *testing.T) {
	middleware := NewAuthMiddleware("secret")

	assert.NotNil(t, middleware)
	assert.Implements(t, (*AuthMiddleware)(nil), middleware)
}

func TestRequireToken(t *testing.T) {
	testCases := []struct {
		name           string
		configured     string
		headerValue    string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			configured:     "secret",
			headerValue:    "Bearer secret",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok"}`,
		},
		{
			name:           "Success, check disabled",
			configured:     "",
			headerValue:    "",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok"}`,
		},
		{
			name:           "Failure, no header",
			configured:     "secret",
			headerValue:    "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Authorization header is empty"}`,
		},
		{
			name:           "Failure, wrong token",
			configured:     "secret",
			headerValue:    "Bearer guess",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Invalid token"}`,
		},
		{
			name:           "Failure, wrong scheme",
			configured:     "secret",
			headerValue:    "Basic secret",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Invalid token"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)

			w := httptest.NewRecorder()
			_, router := gin.CreateTestContext(w)

			m := NewAuthMiddleware(tc.configured)

			router.GET("/test", m.RequireToken(), func(ctx *gin.Context) {
				ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
			})

			req := httptest.NewRequest("GET", "/test", nil)
			if tc.headerValue != "" {
				req.Header.Set("Authorization", tc.headerValue)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	router := gin.New()
	router.Use(RequestLogger(zap.New(core)))
	router.GET("/servers/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/servers/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/boom", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/servers/:id", entries[0].ContextMap()["http_path"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, int64(http.StatusInternalServerError), entries[1].ContextMap()["http_status"])
}
