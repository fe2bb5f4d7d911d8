package page

import (
	"fmt"
	"net/http"
	"time"

	"github.com/darkkaiser/zzirit-storefront/internal/catalog"
	apperrors "github.com/darkkaiser/zzirit-storefront/internal/pkg/errors"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/constants"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/httputil"
	"github.com/darkkaiser/zzirit-storefront/internal/storefront"
	applog "github.com/darkkaiser/zzirit-storefront/pkg/log"
	"github.com/labstack/echo/v4"
)

// detailPage 상세 페이지 템플릿에 전달하는 데이터입니다.
type detailPage struct {
	Detail storefront.ItemDetail
	Dialog storefront.Dialog

	ItemPath       string
	CartActionPath string
	CountdownPath  string
}

// notFoundPage 404 페이지 템플릿에 전달하는 데이터입니다.
type notFoundPage struct {
	Message string
}

// Handler 상품 상세 페이지 요청을 처리합니다.
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

// DetailHandler GET /items/:id
//
// 상품 상세 페이지를 렌더링합니다. 상품이 없으면 404 페이지를 렌더링합니다.
func (h *Handler) DetailHandler(c echo.Context) error {
	detail, err := storefront.ResolveItemDetail(h.catalog.Current(), c.Param("id"), h.links, h.now())
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Render(http.StatusOK, templateItemDetail, newDetailPage(detail, storefront.Dialog{}))
}

// AddToCartHandler POST /items/:id/cart
//
// 페이지의 "장바구니 담기" 버튼 요청을 처리하고, 결과 대화상자를 연 상태로 페이지를 다시 렌더링합니다.
// 담기 실패는 오류 대화상자로 표시되며 에러 응답으로 이어지지 않습니다.
func (h *Handler) AddToCartHandler(c echo.Context) error {
	detail, err := storefront.ResolveItemDetail(h.catalog.Current(), c.Param("id"), h.links, h.now())
	if err != nil {
		return h.renderError(c, err)
	}

	dialog, err := h.submitter.Submit(c.Request().Context(), detail.CartRequest(httputil.CartID(c)))
	if err != nil {
		// 처리 중인 요청이 있는 경우 등도 오류 대화상자로 안내합니다.
		dialog = storefront.Dialog{
			Open:    true,
			Error:   true,
			Title:   storefront.DialogTitleError,
			Message: apperrors.UserMessage(err),
			Actions: []storefront.DialogAction{{Label: storefront.ActionClose}},
		}
	}

	if dialog.Error {
		applog.WithComponentAndFields(constants.ComponentPageHandler, applog.Fields{
			"item_id":    detail.ItemID,
			"message":    dialog.Message,
			"remote_ip":  c.RealIP(),
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		}).Info(constants.LogMsgAddToCartFailed)
	}

	return c.Render(http.StatusOK, templateItemDetail, newDetailPage(detail, dialog))
}

// renderError NotFound 에러는 404 페이지로 렌더링하고, 그 외 에러는 전역 에러 핸들러로 넘깁니다.
func (h *Handler) renderError(c echo.Context, err error) error {
	if !apperrors.Is(err, apperrors.NotFound) {
		return err
	}

	return c.Render(http.StatusNotFound, templateNotFound, notFoundPage{Message: constants.ErrMsgItemNotFound})
}

func newDetailPage(detail storefront.ItemDetail, dialog storefront.Dialog) detailPage {
	itemPath := fmt.Sprintf("/items/%d", detail.ItemID)

	return detailPage{
		Detail: detail,
		Dialog: dialog,

		ItemPath:       itemPath,
		CartActionPath: itemPath + "/cart",
		CountdownPath:  fmt.Sprintf("/api/v1/items/%d/countdown", detail.ItemID),
	}
}
