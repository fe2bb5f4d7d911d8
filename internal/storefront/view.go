// Package storefront 상품 상세 페이지의 화면 모델, 표시 형식, 장바구니 담기 상호작용 상태를 제공합니다.
//
// 렌더링(HTML, JSON)과 무관하게 동작하며, service/api 패키지가 이 패키지의 결과를 화면에 그립니다.
package storefront

import (
	"strconv"
	"time"

	"github.com/darkkaiser/zzirit-storefront/internal/cart"
	"github.com/darkkaiser/zzirit-storefront/internal/catalog"
)

// DefaultImageAlt 상품명이 비어 있을 때 사용하는 이미지 대체 텍스트입니다.
const DefaultImageAlt = "상품 이미지"

// Links 상세 페이지에서 사용하는 이동 경로와 이미지 경로입니다.
type Links struct {
	CartPath         string
	CheckoutPath     string
	ImagePlaceholder string
}

// Image 상품 이미지 영역의 표시 정보입니다.
type Image struct {
	Src         string `json:"src"`
	Alt         string `json:"alt"`
	FallbackKey string `json:"fallback_key"`
}

// TimeDealView 타임딜이 적용된 상품의 가격 및 남은 시간 표시 정보입니다.
type TimeDealView struct {
	DiscountRate  float64    `json:"discount_rate"`
	DiscountBadge string     `json:"discount_badge"`
	OriginalPrice string     `json:"original_price"`
	FinalPrice    string     `json:"final_price"`
	Quantity      string     `json:"quantity"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	TimeLeft      string     `json:"time_left"`
	Ended         bool       `json:"ended"`
}

// ItemDetail 상품 상세 페이지 한 화면에 필요한 모든 표시 정보입니다.
//
// TimeDeal이 nil이면 기본 가격(Price)을, 그렇지 않으면 타임딜 가격을 표시합니다.
type ItemDetail struct {
	ItemID         int64                  `json:"item_id"`
	Name           string                 `json:"name"`
	Type           string                 `json:"type,omitempty"`
	Brand          string                 `json:"brand,omitempty"`
	TimeDealStatus catalog.TimeDealStatus `json:"time_deal_status,omitempty"`
	Price          string                 `json:"price"`
	Image          Image                  `json:"image"`
	TimeDeal       *TimeDealView          `json:"time_deal,omitempty"`
	CartPath       string                 `json:"cart_path"`
	CheckoutPath   string                 `json:"checkout_path"`
	Policies       []PolicySection        `json:"policies"`
}

// HasTimeDeal 타임딜 가격이 적용되는지 여부입니다.
func (d ItemDetail) HasTimeDeal() bool {
	return d.TimeDeal != nil
}

// CartRequest 상세 페이지의 "장바구니 담기" 버튼이 보내는 요청입니다. 수량은 항상 1입니다.
// 종료된 타임딜 상품은 기본 가격으로 담습니다.
func (d ItemDetail) CartRequest(cartID string) cart.AddRequest {
	return cart.AddRequest{
		CartID:   cartID,
		ItemID:   d.ItemID,
		Quantity: 1,
		TimeDeal: d.HasTimeDeal() && !d.TimeDeal.Ended,
	}
}

// NewItemDetail 상품과 (있다면) 타임딜 정보로 화면 모델을 생성합니다.
func NewItemDetail(item catalog.Item, deal *catalog.TimeDealInfo, links Links, now time.Time) ItemDetail {
	alt := item.Name
	if alt == "" {
		alt = DefaultImageAlt
	}

	d := ItemDetail{
		ItemID:         item.ItemID,
		Name:           item.Name,
		Type:           item.Type,
		Brand:          item.Brand,
		TimeDealStatus: item.TimeDealStatus,
		Price:          FormatPrice(item.Price),
		Image: Image{
			Src:         links.ImagePlaceholder,
			Alt:         alt,
			FallbackKey: strconv.FormatInt(item.ItemID, 10),
		},
		CartPath:     links.CartPath,
		CheckoutPath: links.CheckoutPath,
		Policies:     Policies(),
	}

	if deal != nil {
		d.TimeDeal = &TimeDealView{
			DiscountRate:  deal.DiscountRate,
			DiscountBadge: FormatDiscountRate(deal.DiscountRate),
			OriginalPrice: FormatPrice(deal.OriginalPrice),
			FinalPrice:    FormatPrice(deal.FinalPrice),
			Quantity:      FormatQuantity(deal.Quantity),
			EndTime:       deal.EndTime,
			TimeLeft:      FormatTimeLeftPtr(deal.EndTime, now),
			Ended:         deal.EndTime != nil && !deal.EndTime.After(now),
		}
	}

	return d
}

// ResolveItemDetail 경로 파라미터로 전달된 식별자로 상품과 타임딜을 조회하여 화면 모델을 생성합니다.
// 식별자를 해석할 수 없거나 상품이 없으면 NotFound 에러를 반환합니다.
func ResolveItemDetail(c *catalog.Catalog, rawID string, links Links, now time.Time) (ItemDetail, error) {
	id, err := catalog.ParseItemID(rawID)
	if err != nil {
		return ItemDetail{}, err
	}

	item, ok := c.FindItem(id)
	if !ok {
		return ItemDetail{}, NewErrItemNotFound(rawID)
	}

	var deal *catalog.TimeDealInfo
	if info, ok := c.FindTimeDealInfo(id); ok {
		deal = &info
	}

	return NewItemDetail(item, deal, links, now), nil
}

// Countdown 타임딜 남은 시간의 특정 시점 스냅샷입니다.
// 클라이언트는 이 값을 주기적으로 다시 요청하여 남은 시간을 갱신합니다.
type Countdown struct {
	ItemID          int64      `json:"item_id"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	Now             time.Time  `json:"now"`
	RemainingMillis int64      `json:"remaining_millis"`
	TimeLeft        string     `json:"time_left"`
	Ended           bool       `json:"ended"`
}

// NewCountdown 타임딜 종료 시각 기준의 남은 시간 스냅샷을 생성합니다.
// 종료 시각이 없으면 TimeLeft는 "-"이고 RemainingMillis는 0입니다.
func NewCountdown(itemID int64, end *time.Time, now time.Time) Countdown {
	c := Countdown{
		ItemID:   itemID,
		EndTime:  end,
		Now:      now,
		TimeLeft: FormatTimeLeftPtr(end, now),
	}

	if end != nil {
		if remaining := end.Sub(now).Milliseconds(); remaining > 0 {
			c.RemainingMillis = remaining
		} else {
			c.Ended = true
		}
	}

	return c
}
