package httputil

import (
	"net/http"
	"strings"

	"github.com/darkkaiser/zzirit-storefront/internal/service/api/constants"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CartID 요청 쿠키에서 장바구니 식별자를 읽습니다.
// 쿠키가 없거나 올바른 UUID가 아니면 새 식별자를 발급하여 응답 쿠키로 내려줍니다.
func CartID(c echo.Context) string {
	if cookie, err := c.Cookie(constants.CartCookieName); err == nil {
		if id, err := uuid.Parse(strings.TrimSpace(cookie.Value)); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     constants.CartCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(constants.CartCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}
