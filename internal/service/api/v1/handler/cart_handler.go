package handler

import (
	"net/http"

	"github.com/darkkaiser/zzirit-storefront/internal/cart"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/constants"
	apihandler "github.com/darkkaiser/zzirit-storefront/internal/service/api/handler"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/httputil"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/v1/model/request"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/v1/model/response"
	applog "github.com/darkkaiser/zzirit-storefront/pkg/log"
	"github.com/labstack/echo/v4"
)

// AddCartItemHandler godoc
// @Summary 장바구니 담기
// @Description 상품을 장바구니에 담고 결과 대화상자 정보를 반환합니다.
// @Description
// @Description 장바구니는 zzirit_cart_id 쿠키로 식별되며, 쿠키가 없으면 새로 발급됩니다.
// @Description 상품이 없거나 타임딜이 종료된 경우 등 담기 실패도 200으로 응답하며 dialog.error가 true입니다.
// @Description 같은 장바구니의 이전 요청이 처리 중이면 409를 반환합니다.
// @Description
// @Description ```bash
// @Description curl -X POST "http://localhost:8080/api/v1/cart/items" \
// @Description   -H "Content-Type: application/json" \
// @Description   -d '{"item_id":10,"quantity":1}'
// @Description ```
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body request.AddCartItemRequest true "담을 상품"
// @Success 200 {object} response.DialogResponse "담기 결과 대화상자"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청 (JSON 형식 오류, 필수 필드 누락 등)"
// @Failure 409 {object} response.ErrorResponse "처리 중인 요청이 있음"
// @Failure 415 {object} response.ErrorResponse "지원하지 않는 Content-Type"
// @Router /api/v1/cart/items [post]
func (h *Handler) AddCartItemHandler(c echo.Context) error {
	req := new(request.AddCartItemRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}
	if err := apihandler.ValidateRequest(req); err != nil {
		return NewErrValidationFailed(apihandler.FormatValidationError(err))
	}

	addReq := cart.AddRequest{
		CartID:   httputil.CartID(c),
		ItemID:   req.ItemID,
		Quantity: req.QuantityOrDefault(),
	}
	if req.TimeDeal != nil {
		addReq.TimeDeal = *req.TimeDeal
	} else if info, ok := h.catalog.Current().FindTimeDealInfo(req.ItemID); ok {
		// 종료된 타임딜 상품은 기본 가격으로 담습니다.
		addReq.TimeDeal = info.EndTime == nil || info.EndTime.After(h.now())
	}

	dialog, err := h.submitter.Submit(c.Request().Context(), addReq)
	if err != nil {
		return err
	}

	if dialog.Error {
		h.log(c).WithFields(applog.Fields{
			"item_id": addReq.ItemID,
			"message": dialog.Message,
		}).Info(constants.LogMsgAddToCartFailed)
	}

	return c.JSON(http.StatusOK, response.DialogResponse{
		ResultCode: 0,
		Dialog:     dialog,
	})
}
