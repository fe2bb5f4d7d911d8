// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 요청을 검증하고 카탈로그와 장바구니 기능을 호출한 뒤 JSON 응답을 반환합니다.
package handler

import (
	"time"

	"github.com/darkkaiser/zzirit-storefront/internal/catalog"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/constants"
	"github.com/darkkaiser/zzirit-storefront/internal/storefront"
	applog "github.com/darkkaiser/zzirit-storefront/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler v1 API 요청을 처리하는 핸들러입니다.
type Handler struct {
	catalog   catalog.Source
	submitter *storefront.CartSubmitter
	links     storefront.Links

	now func() time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(source catalog.Source, submitter *storefront.CartSubmitter, links storefront.Links) *Handler {
	if source == nil {
		panic(constants.PanicMsgCatalogSourceRequired)
	}
	if submitter == nil {
		panic(constants.PanicMsgCartServiceRequired)
	}

	return &Handler{
		catalog:   source,
		submitter: submitter,
		links:     links,

		now: time.Now,
	}
}

func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"method":     c.Request().Method,
		"path":       c.Request().URL.Path,
		"remote_ip":  c.RealIP(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
