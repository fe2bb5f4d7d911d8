package catalog

import "time"

// TimeDealStatus 상품 레코드에 기록된 타임딜 상태입니다.
type TimeDealStatus string

const (
	TimeDealNone   TimeDealStatus = "NONE"
	TimeDealActive TimeDealStatus = "TIME_DEAL"

	// TimeDealUnknown NONE, TIME_DEAL 이외의 값이거나 값이 없는 경우입니다.
	TimeDealUnknown TimeDealStatus = ""
)

func parseTimeDealStatus(s string) TimeDealStatus {
	switch TimeDealStatus(s) {
	case TimeDealNone:
		return TimeDealNone
	case TimeDealActive:
		return TimeDealActive
	default:
		return TimeDealUnknown
	}
}

// Item 상품 한 건의 정보입니다. 카탈로그가 적재된 이후에는 변경되지 않습니다.
//
// 원본 데이터에 값이 없거나 형식이 맞지 않는 선택 필드는 nil로 남습니다.
type Item struct {
	ItemID         int64
	Name           string
	Type           string
	Brand          string
	Quantity       *int64
	Price          *float64
	TimeDealStatus TimeDealStatus
	EndTimeDeal    *time.Time
}

// TimeDeal 타임딜 캠페인 한 건입니다. 할인율과 종료 시각은 캠페인에 속한 모든 상품에 공통으로 적용됩니다.
type TimeDeal struct {
	DiscountRate float64
	EndTime      *time.Time
	Items        []TimeDealItem
}

// TimeDealItem 캠페인 내 상품별 가격 및 수량입니다.
type TimeDealItem struct {
	ItemID        int64
	OriginalPrice *float64
	FinalPrice    *float64
	Quantity      *int64
}

// TimeDealInfo 상품 식별자로 캠페인을 조회한 결과입니다.
type TimeDealInfo struct {
	DiscountRate  float64
	OriginalPrice *float64
	FinalPrice    *float64
	Quantity      *int64
	EndTime       *time.Time
}
