// Package strutil 문자열 정규화와 로깅용 마스킹 함수를 제공합니다.
package strutil

import "strings"

// NormalizeSpaces 앞뒤 공백을 제거하고 연속된 공백 문자를 하나의 공백으로 축약합니다.
// 예: "  무선   이어폰 \t 화이트 " -> "무선 이어폰 화이트"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitAndTrim sep로 분리한 각 항목의 공백을 제거하고 빈 항목을 버립니다.
// 남는 항목이 없으면 nil을 반환합니다.
// 예: "a, , b,c" -> ["a", "b", "c"]
func SplitAndTrim(s, sep string) []string {
	var result []string
	for _, token := range strings.Split(s, sep) {
		if token = strings.TrimSpace(token); token != "" {
			result = append(result, token)
		}
	}
	return result
}

// MaskSensitiveData 비밀번호나 토큰을 로그에 남길 때 앞뒤 일부만 남기고 가립니다.
func MaskSensitiveData(data string) string {
	switch {
	case data == "":
		return ""
	case len(data) <= 3:
		return "***"
	case len(data) <= 12:
		return data[:4] + "***"
	default:
		return data[:4] + "***" + data[len(data)-4:]
	}
}
