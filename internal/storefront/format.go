package storefront

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder 값이 없거나 형식이 맞지 않는 필드를 표시할 때 사용하는 문자열입니다.
const Placeholder = "-"

// TimeDealEnded 종료 시각이 지난 타임딜의 남은 시간 표시 문자열입니다.
const TimeDealEnded = "종료됨"

var printer = message.NewPrinter(language.Korean)

// FormatPrice 가격을 천 단위 구분 기호가 포함된 문자열로 변환합니다. 소수점 이하는 최대 세 자리까지 표시합니다.
// 예: 1234567 -> "1,234,567", 1234.5 -> "1,234.5", nil -> "-"
func FormatPrice(price *float64) string {
	if price == nil {
		return Placeholder
	}
	return printer.Sprint(number.Decimal(*price))
}

// FormatQuantity 수량을 문자열로 변환합니다. nil이면 "-"입니다.
func FormatQuantity(quantity *int64) string {
	if quantity == nil {
		return Placeholder
	}
	return strconv.FormatInt(*quantity, 10)
}

// FormatDiscountRate 할인율을 배지 문자열로 변환합니다.
// 예: 20 -> "-20%", 12.5 -> "-12.5%"
func FormatDiscountRate(rate float64) string {
	return "-" + strconv.FormatFloat(rate, 'f', -1, 64) + "%"
}

// FormatTimeLeft now 기준으로 end까지 남은 시간을 "{h}시간 {m}분 {s}초 남음" 형식으로 반환합니다.
//
// 남은 시간은 밀리초 단위로 계산한 뒤 내림하며, 0 이하이면 "종료됨"을 반환합니다.
// 호출 시점의 값을 한 번 계산할 뿐 주기적으로 갱신하지 않습니다.
func FormatTimeLeft(end, now time.Time) string {
	diff := end.Sub(now).Milliseconds()
	if diff <= 0 {
		return TimeDealEnded
	}

	h := diff / 1000 / 60 / 60
	m := diff / 1000 / 60 % 60
	s := diff / 1000 % 60

	return fmt.Sprintf("%d시간 %d분 %d초 남음", h, m, s)
}

// FormatTimeLeftPtr 종료 시각이 없으면 "-"를 반환하고, 그 외에는 FormatTimeLeft와 같습니다.
func FormatTimeLeftPtr(end *time.Time, now time.Time) string {
	if end == nil {
		return Placeholder
	}
	return FormatTimeLeft(*end, now)
}
