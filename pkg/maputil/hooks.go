package maputil

import (
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

var durationType = reflect.TypeOf(time.Duration(0))

// stringToDurationHookFunc "72h" 같은 문자열을 time.Duration으로 변환합니다.
// time.Duration의 별칭 타입이나 일반 int64 필드는 변환하지 않습니다.
func stringToDurationHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != durationType {
			return data, nil
		}

		d, err := time.ParseDuration(strings.TrimSpace(reflect.ValueOf(data).String()))
		if err != nil {
			// 해석할 수 없으면 기본 로직에 맡깁니다.
			return data, nil
		}
		return d, nil
	}
}

// stringToSliceHookFunc 쉼표로 구분된 문자열을 슬라이스로 변환합니다. 각 항목의 공백은 제거됩니다.
// []byte 대상은 분할하지 않습니다.
func stringToSliceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t.Kind() != reflect.Slice || t.Elem().Kind() == reflect.Uint8 {
			return data, nil
		}

		s := reflect.ValueOf(data).String()
		if s == "" {
			return []string{}, nil
		}

		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}
}
