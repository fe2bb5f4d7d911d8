package api

import (
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/handler/system"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/page"
	v1 "github.com/darkkaiser/zzirit-storefront/internal/service/api/v1"
	v1handler "github.com/darkkaiser/zzirit-storefront/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers 라우트 등록에 필요한 핸들러 묶음입니다.
type Handlers struct {
	System *system.Handler
	Page   *page.Handler
	V1     *v1handler.Handler
}

// RegisterRoutes 서비스의 모든 라우트를 등록합니다.
//
//   - 시스템 엔드포인트: /health, /version
//   - API 문서: /swagger/*
//   - 상품 상세 페이지: /items/:id
//   - JSON API: /api/v1/*
func RegisterRoutes(e *echo.Echo, h Handlers) {
	registerSystemRoutes(e, h.System)
	registerSwaggerRoutes(e)

	if h.Page != nil {
		page.RegisterRoutes(e, h.Page)
	}
	if h.V1 != nil {
		v1.RegisterRoutes(e, h.V1)
	}
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}
