// Package request v1 API의 요청 모델을 정의합니다.
package request

// AddCartItemRequest 장바구니 담기 요청
type AddCartItemRequest struct {
	// 상품 ID
	ItemID int64 `json:"item_id" validate:"required,gt=0" korean:"상품 ID" example:"10"`

	// 담을 수량. 생략하면 1개입니다.
	Quantity int64 `json:"quantity" validate:"omitempty,gte=1,lte=99" korean:"수량" example:"1"`

	// 타임딜 가격 적용 여부. 생략하면 상품이 진행 중인 타임딜에 포함되어 있는지로 결정합니다.
	TimeDeal *bool `json:"time_deal,omitempty" example:"true"`
}

// QuantityOrDefault 요청 수량을 반환합니다. 생략된 경우 1입니다.
func (r *AddCartItemRequest) QuantityOrDefault() int64 {
	if r.Quantity == 0 {
		return 1
	}
	return r.Quantity
}
