// Package cart 장바구니 담기 기능과 장바구니 저장소(메모리, Redis)를 제공합니다.
package cart

// Line 장바구니에 담긴 상품 한 줄입니다.
// 같은 상품이라도 타임딜 적용 여부가 다르면 별도의 줄로 관리됩니다.
type Line struct {
	ItemID   int64 `json:"item_id"`
	Quantity int64 `json:"quantity"`
	TimeDeal bool  `json:"time_deal"`
}

// Cart 장바구니 한 건의 현재 상태입니다.
type Cart struct {
	ID    string `json:"id"`
	Lines []Line `json:"lines"`
}

// TotalQuantity 모든 줄의 수량 합계입니다.
func (c Cart) TotalQuantity() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// AddRequest 장바구니 담기 요청입니다.
type AddRequest struct {
	CartID   string
	ItemID   int64
	Quantity int64
	TimeDeal bool
}

func (r AddRequest) line() Line {
	return Line{ItemID: r.ItemID, Quantity: r.Quantity, TimeDeal: r.TimeDeal}
}
