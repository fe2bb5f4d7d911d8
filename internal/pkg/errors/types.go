package errors

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그 등)
	Internal

	// System 디스크 I/O, 네트워크, Redis 연결 등 인프라 오류
	System

	// InvalidInput 잘못된 입력값 (요청 본문 검증 실패, 설정 값 오류 등)
	InvalidInput

	// Conflict 상태 충돌 (처리 중인 장바구니 요청이 있는 경우 등)
	Conflict

	// NotFound 상품 등 요청한 리소스를 찾을 수 없음
	NotFound

	// ParsingFailed JSON 디코딩, 날짜 변환 등 데이터 형식 변환 실패
	ParsingFailed

	// Unavailable 의존 서비스의 일시적 사용 불가
	Unavailable
)

// String ErrorType의 이름을 반환합니다.
func (t ErrorType) String() string {
	switch t {
	case Internal:
		return "Internal"
	case System:
		return "System"
	case InvalidInput:
		return "InvalidInput"
	case Conflict:
		return "Conflict"
	case NotFound:
		return "NotFound"
	case ParsingFailed:
		return "ParsingFailed"
	case Unavailable:
		return "Unavailable"
	default:
		return "Unknown"
	}
}
