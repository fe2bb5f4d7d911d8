// Package v1 /api/v1 경로 하위의 JSON API 라우트를 정의합니다.
//
// 주요 엔드포인트:
//   - GET  /api/v1/items/:id            - 상품 상세 조회
//   - GET  /api/v1/items/:id/countdown  - 타임딜 남은 시간 조회
//   - POST /api/v1/cart/items           - 장바구니 담기
package v1

import (
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/middleware"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 설정합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	v1Group := e.Group("/api/v1")

	v1Group.GET("/items/:id", h.GetItemHandler)
	v1Group.GET("/items/:id/countdown", h.GetCountdownHandler)

	v1Group.POST("/cart/items", h.AddCartItemHandler,
		middleware.ValidateContentType(echo.MIMEApplicationJSON),
	)
}
