package catalog

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/darkkaiser/zzirit-storefront/pkg/maputil"
	"github.com/darkkaiser/zzirit-storefront/pkg/strutil"
	"github.com/tidwall/gjson"
)

// timeLayouts 종료 시각 문자열에 시도하는 레이아웃입니다. 시간대 정보가 없는 값은 카탈로그 시간대로 해석합니다.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// dateOnlyLayout 날짜만 있는 종료 시각은 UTC 자정으로 해석합니다.
const dateOnlyLayout = "2006-01-02"

type rawItem struct {
	ItemID         *int64   `json:"itemId"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Brand          string   `json:"brand"`
	Quantity       *int64   `json:"quantity"`
	Price          *float64 `json:"price"`
	TimeDealStatus string   `json:"timeDealStatus"`
	EndTimeDeal    string   `json:"endTimeDeal"`
}

type rawTimeDeal struct {
	DiscountRate float64 `json:"discountRate"`
	EndTime      string  `json:"endTime"`
}

type rawTimeDealItem struct {
	ItemID        *int64   `json:"itemId"`
	OriginalPrice *float64 `json:"originalPrice"`
	FinalPrice    *float64 `json:"finalPrice"`
	Quantity      *int64   `json:"quantity"`
}

// decodeItem 원본 상품 레코드를 Item으로 변환합니다.
// 형식이 맞지 않는 선택 필드는 비워두며, 레코드 자체가 객체가 아니면 false를 반환합니다.
func decodeItem(record gjson.Result, loc *time.Location) (Item, bool) {
	if !record.IsObject() {
		return Item{}, false
	}

	fields := scalarFields(record,
		[]string{"itemId", "quantity"},
		[]string{"price"},
		[]string{"name", "type", "brand", "timeDealStatus", "endTimeDeal"},
	)

	raw, err := maputil.Decode[rawItem](fields)
	if err != nil {
		return Item{}, false
	}

	item := Item{
		Name:           strutil.NormalizeSpaces(raw.Name),
		Type:           strings.TrimSpace(raw.Type),
		Brand:          strings.TrimSpace(raw.Brand),
		Quantity:       raw.Quantity,
		Price:          raw.Price,
		TimeDealStatus: parseTimeDealStatus(raw.TimeDealStatus),
		EndTimeDeal:    parseTime(raw.EndTimeDeal, loc),
	}
	if raw.ItemID != nil {
		item.ItemID = *raw.ItemID
	}

	return item, true
}

// decodeTimeDeal 원본 캠페인 레코드를 TimeDeal로 변환합니다.
// items 배열 중 객체가 아닌 항목은 건너뜁니다.
func decodeTimeDeal(record gjson.Result, loc *time.Location) (TimeDeal, bool) {
	if !record.IsObject() {
		return TimeDeal{}, false
	}

	raw, err := maputil.Decode[rawTimeDeal](scalarFields(record, nil, []string{"discountRate"}, []string{"endTime"}))
	if err != nil {
		return TimeDeal{}, false
	}

	deal := TimeDeal{
		DiscountRate: raw.DiscountRate,
		EndTime:      parseTime(raw.EndTime, loc),
	}

	record.Get("items").ForEach(func(_, value gjson.Result) bool {
		if !value.IsObject() {
			return true
		}

		fields := scalarFields(value, []string{"itemId", "quantity"}, []string{"originalPrice", "finalPrice"}, nil)
		entry, err := maputil.Decode[rawTimeDealItem](fields)
		if err != nil || entry.ItemID == nil {
			return true
		}

		deal.Items = append(deal.Items, TimeDealItem{
			ItemID:        *entry.ItemID,
			OriginalPrice: entry.OriginalPrice,
			FinalPrice:    entry.FinalPrice,
			Quantity:      entry.Quantity,
		})
		return true
	})

	return deal, true
}

// scalarFields 레코드에서 지정된 키만 골라 디코딩 가능한 값으로 정리합니다.
//
//   - integers: 정수로 표현 가능한 숫자(또는 숫자 문자열)만 남깁니다.
//   - numbers: 유한한 숫자(또는 숫자 문자열)만 남깁니다.
//   - texts: 문자열과 숫자만 문자열로 남깁니다.
//
// 조건에 맞지 않는 값은 키 자체를 제외하여 누락된 필드와 동일하게 취급합니다.
func scalarFields(record gjson.Result, integers, numbers, texts []string) map[string]any {
	fields := make(map[string]any, len(integers)+len(numbers)+len(texts))

	for _, key := range integers {
		if f, ok := numberOf(record.Get(key)); ok && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			fields[key] = f
		}
	}
	for _, key := range numbers {
		if f, ok := numberOf(record.Get(key)); ok {
			fields[key] = f
		}
	}
	for _, key := range texts {
		if v := record.Get(key); v.Type == gjson.String || v.Type == gjson.Number {
			fields[key] = v.String()
		}
	}

	return fields
}

func numberOf(v gjson.Result) (float64, bool) {
	var f float64
	switch v.Type {
	case gjson.Number:
		f = v.Num
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseTime 종료 시각 문자열을 해석합니다. 비어있거나 해석할 수 없으면 nil입니다.
func parseTime(s string, loc *time.Location) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t
		}
	}
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return &t
	}
	return nil
}
