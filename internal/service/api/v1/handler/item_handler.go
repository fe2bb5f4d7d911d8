package handler

import (
	"net/http"

	"github.com/darkkaiser/zzirit-storefront/internal/catalog"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/v1/model/response"
	"github.com/darkkaiser/zzirit-storefront/internal/storefront"
	"github.com/labstack/echo/v4"
)

// GetItemHandler godoc
// @Summary 상품 상세 조회
// @Description 상품 ID로 상세 페이지에 표시할 정보를 조회합니다.
// @Description 진행 중인 타임딜에 포함된 상품은 time_deal 필드에 할인율, 할인가, 남은 시간이 담깁니다.
// @Description 값이 없는 가격과 수량은 "-"로 표시됩니다.
// @Tags Item
// @Produce json
// @Param id path string true "상품 ID" example(10)
// @Success 200 {object} response.ItemDetailResponse "상품 상세"
// @Failure 404 {object} response.ErrorResponse "상품을 찾을 수 없음"
// @Router /api/v1/items/{id} [get]
func (h *Handler) GetItemHandler(c echo.Context) error {
	detail, err := storefront.ResolveItemDetail(h.catalog.Current(), c.Param("id"), h.links, h.now())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.ItemDetailResponse{
		ResultCode: 0,
		Item:       detail,
	})
}

// GetCountdownHandler godoc
// @Summary 타임딜 남은 시간 조회
// @Description 상품이 포함된 타임딜의 남은 시간을 조회합니다.
// @Description 클라이언트는 이 API를 주기적으로 호출하여 남은 시간 표시를 갱신합니다.
// @Description 종료된 타임딜은 time_left가 "종료됨"이고, 종료 시각이 없으면 "-"입니다.
// @Tags Item
// @Produce json
// @Param id path string true "상품 ID" example(10)
// @Success 200 {object} response.CountdownResponse "남은 시간"
// @Failure 404 {object} response.ErrorResponse "상품이 없거나 타임딜에 포함되지 않음"
// @Router /api/v1/items/{id}/countdown [get]
func (h *Handler) GetCountdownHandler(c echo.Context) error {
	rawID := c.Param("id")

	id, err := catalog.ParseItemID(rawID)
	if err != nil {
		return err
	}

	current := h.catalog.Current()
	if _, ok := current.FindItem(id); !ok {
		return storefront.NewErrItemNotFound(rawID)
	}

	deal, ok := current.FindTimeDealInfo(id)
	if !ok {
		return storefront.ErrNoTimeDeal
	}

	return c.JSON(http.StatusOK, response.CountdownResponse{
		ResultCode: 0,
		Countdown:  storefront.NewCountdown(id, deal.EndTime, h.now()),
	})
}
