package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestValidateContentType(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		body        string
		contentType string
		expectErr   bool
	}{
		{"JSON 요청_통과", http.MethodPost, `{"item_id":10}`, "application/json", false},
		{"charset 파라미터 포함_통과", http.MethodPost, `{"item_id":10}`, "application/json; charset=UTF-8", false},
		{"대소문자 무시_통과", http.MethodPost, `{"item_id":10}`, "Application/JSON", false},
		{"본문 없음_검증 생략", http.MethodGet, "", "", false},
		{"Content-Type 누락_415", http.MethodPost, `{"item_id":10}`, "", true},
		{"폼 전송_415", http.MethodPost, "item_id=10", "application/x-www-form-urlencoded", true},
		{"유사 타입_415", http.MethodPost, `{}`, "application/json-patch+json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestLogger(t)

			e := echo.New()
			var req *http.Request
			if tt.body == "" {
				req = httptest.NewRequest(tt.method, "/api/v1/cart/items", nil)
			} else {
				req = httptest.NewRequest(tt.method, "/api/v1/cart/items", strings.NewReader(tt.body))
			}
			if tt.contentType != "" {
				req.Header.Set(echo.HeaderContentType, tt.contentType)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			called := false
			h := ValidateContentType(echo.MIMEApplicationJSON)(func(c echo.Context) error {
				called = true
				return nil
			})

			err := h(c)
			if tt.expectErr {
				assert.Equal(t, ErrUnsupportedMediaType, err)
				assert.False(t, called)
			} else {
				assert.NoError(t, err)
				assert.True(t, called)
			}
		})
	}
}
