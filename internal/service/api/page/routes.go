package page

import "github.com/labstack/echo/v4"

// RegisterRoutes 상품 상세 페이지 라우트를 등록합니다.
//
//   - GET  /items/:id       - 상세 페이지
//   - POST /items/:id/cart  - 장바구니 담기 후 대화상자를 연 상세 페이지
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/items/:id", h.DetailHandler)
	e.POST("/items/:id/cart", h.AddToCartHandler)
}
