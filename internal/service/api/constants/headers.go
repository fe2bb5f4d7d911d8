package constants

// HTTP 헤더 키 상수입니다.
const (
	// RetryAfter RFC 7231 Retry-After 헤더
	RetryAfter = "Retry-After"

	// RetryAfterSeconds 요청 제한 초과 시 제안하는 재시도 대기 시간(초)
	RetryAfterSeconds = "1"
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
