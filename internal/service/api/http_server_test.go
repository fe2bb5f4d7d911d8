package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/darkkaiser/zzirit-storefront/internal/service/api/page"
	applog "github.com/darkkaiser/zzirit-storefront/pkg/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestLogger 로거 출력을 버퍼로 바꿉니다. 전역 로거를 변경하므로 t.Parallel()과 함께 사용하지 않습니다.
func setupTestLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := new(bytes.Buffer)
	logger := applog.StandardLogger()
	prevLevel := logger.Level

	logger.SetOutput(buf)
	logger.SetFormatter(&applog.JSONFormatter{})
	logger.SetLevel(applog.DebugLevel)

	t.Cleanup(func() {
		logger.SetOutput(os.Stdout)
		logger.SetFormatter(&applog.TextFormatter{})
		logger.SetLevel(prevLevel)
	})

	return buf
}

func TestNewHTTPServer_Configuration_Table(t *testing.T) {
	tests := []struct {
		name           string
		config         HTTPServerConfig
		expectDebug    bool
		expectRenderer bool
	}{
		{
			name:        "Debug 모드 활성화",
			config:      HTTPServerConfig{Debug: true, AllowOrigins: []string{"*"}},
			expectDebug: true,
		},
		{
			name:        "Debug 모드 비활성화",
			config:      HTTPServerConfig{AllowOrigins: []string{"http://example.com"}},
			expectDebug: false,
		},
		{
			name:           "렌더러 설정",
			config:         HTTPServerConfig{AllowOrigins: []string{"*"}, Renderer: page.MustNewRenderer()},
			expectRenderer: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewHTTPServer(tt.config)

			require.NotNil(t, e)
			assert.Equal(t, tt.expectDebug, e.Debug)
			assert.True(t, e.HideBanner)
			assert.True(t, e.HidePort)
			assert.NotNil(t, e.Logger)
			assert.Equal(t, tt.expectRenderer, e.Renderer != nil)
		})
	}
}

func TestNewHTTPServer_CORSMiddleware_Table(t *testing.T) {
	tests := []struct {
		name              string
		allowOrigins      []string
		requestOrigin     string
		requestMethod     string
		expectStatus      int
		expectAllowOrigin string
	}{
		{
			name:              "와일드카드 Origin - Preflight 요청",
			allowOrigins:      []string{"*"},
			requestOrigin:     "http://example.com",
			requestMethod:     http.MethodOptions,
			expectStatus:      http.StatusNoContent,
			expectAllowOrigin: "*",
		},
		{
			name:              "허용된 Origin - GET 요청",
			allowOrigins:      []string{"http://example.com"},
			requestOrigin:     "http://example.com",
			requestMethod:     http.MethodGet,
			expectStatus:      http.StatusOK,
			expectAllowOrigin: "http://example.com",
		},
		{
			name:              "허용되지 않은 Origin - GET 요청",
			allowOrigins:      []string{"http://trusted.com"},
			requestOrigin:     "http://evil.com",
			requestMethod:     http.MethodGet,
			expectStatus:      http.StatusOK,
			expectAllowOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewHTTPServer(HTTPServerConfig{AllowOrigins: tt.allowOrigins})
			e.GET("/test", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

			req := httptest.NewRequest(tt.requestMethod, "/test", nil)
			req.Header.Set(echo.HeaderOrigin, tt.requestOrigin)
			if tt.requestMethod == http.MethodOptions {
				req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Equal(t, tt.expectAllowOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
			if tt.requestMethod == http.MethodOptions {
				assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPost)
			}
		})
	}
}

func TestNewHTTPServer_PanicRecoveryMiddleware(t *testing.T) {
	buf := setupTestLogger(t)

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.GET("/panic", func(c echo.Context) error {
		panic("intentional panic")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() { e.ServeHTTP(rec, req) })

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "내부 서버 오류가 발생했습니다")
	assert.NotContains(t, rec.Body.String(), "intentional panic", "패닉 내용은 응답에 노출되지 않아야 합니다")
	assert.Contains(t, buf.String(), "intentional panic")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestNewHTTPServer_HTTPLoggerMiddleware(t *testing.T) {
	buf := setupTestLogger(t)

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.GET("/log-test", func(c echo.Context) error { return c.String(http.StatusOK, "success") })

	req := httptest.NewRequest(http.MethodGet, "/log-test?token=abcdefghijklmnop", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	logContent := buf.String()
	assert.Contains(t, logContent, `"method":"GET"`)
	assert.Contains(t, logContent, `"status":200`)
	assert.Contains(t, logContent, `"path":"/log-test"`)
	assert.NotContains(t, logContent, "abcdefghijklmnop", "민감한 쿼리 파라미터는 마스킹되어야 합니다")
}

func TestNewHTTPServer_StandardMiddleware_Table(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.GET("/test", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	tests := []struct {
		name   string
		header string
		expect string
	}{
		{name: "X-XSS-Protection 헤더", header: echo.HeaderXXSSProtection, expect: "1; mode=block"},
		{name: "X-Content-Type-Options 헤더", header: echo.HeaderXContentTypeOptions, expect: "nosniff"},
		{name: "X-Frame-Options 헤더", header: echo.HeaderXFrameOptions, expect: "SAMEORIGIN"},
		{name: "Server 헤더 제거", header: echo.HeaderServer, expect: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, rec.Header().Get(tt.header))
		})
	}

	t.Run("Request ID 헤더", func(t *testing.T) {
		_, err := uuid.Parse(rec.Header().Get(echo.HeaderXRequestID))
		assert.NoError(t, err, "Request ID는 UUID 형식이어야 합니다")
	})
}

func TestNewHTTPServer_HSTS_Table(t *testing.T) {
	tests := []struct {
		name       string
		enableHSTS bool
		expectHSTS bool
	}{
		{name: "TLS 서버는 HSTS 헤더 추가", enableHSTS: true, expectHSTS: true},
		{name: "일반 서버는 HSTS 헤더 없음", enableHSTS: false, expectHSTS: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}, EnableHSTS: tt.enableHSTS})
			e.GET("/test", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set(echo.HeaderXForwardedProto, "https")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectHSTS, rec.Header().Get(echo.HeaderStrictTransportSecurity) != "")
		})
	}
}

func TestNewHTTPServer_BodyLimit(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.POST("/test", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(make([]byte, 256*1024)))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"result_code":413,"message":"요청 본문이 너무 큽니다"}`, rec.Body.String())
}
