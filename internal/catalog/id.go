package catalog

import (
	"math"
	"strconv"
	"strings"

	apperrors "github.com/darkkaiser/zzirit-storefront/internal/pkg/errors"
)

// ParseItemID 경로 파라미터로 전달된 상품 식별자를 정수로 변환합니다.
//
// 앞뒤 공백을 허용하며 "12", "12.0", "1e2", "0x1F", "0o17", "0b11" 형태를 숫자로 해석합니다.
// 0이거나 숫자로 해석할 수 없거나 정수가 아닌 값은 어떤 상품과도 일치할 수 없으므로 NotFound 에러를 반환합니다.
func ParseItemID(raw string) (int64, error) {
	s := strings.TrimSpace(raw)

	// 숫자 구분자("1_000"), 16진수 지수("0x1p4"), 부호 붙은 진법 접두사("-0x1F")는 식별자 표기로 인정하지 않습니다.
	if strings.Contains(s, "_") || invalidRadixLiteral(s) {
		return 0, apperrors.Newf(apperrors.NotFound, "상품 식별자를 숫자로 해석할 수 없습니다 (id=%q)", raw)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		i, intErr := strconv.ParseInt(s, 0, 64)
		if intErr != nil {
			return 0, apperrors.Newf(apperrors.NotFound, "상품 식별자를 숫자로 해석할 수 없습니다 (id=%q)", raw)
		}
		f = float64(i)
	}

	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) >= 1<<63 {
		return 0, apperrors.Newf(apperrors.NotFound, "존재하지 않는 상품 식별자입니다 (id=%q)", raw)
	}

	return int64(f), nil
}

func invalidRadixLiteral(s string) bool {
	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) < 2 || unsigned[0] != '0' {
		return false
	}

	switch unsigned[1] {
	case 'x', 'X':
		return len(unsigned) != len(s) || strings.ContainsAny(unsigned, "pP")
	case 'o', 'O', 'b', 'B':
		return len(unsigned) != len(s)
	}
	return false
}
