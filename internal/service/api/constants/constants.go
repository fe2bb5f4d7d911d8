package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간 (60초)
	DefaultRequestTimeout = 60 * time.Second

	// DefaultReadTimeout 요청 본문 읽기 최대 대기 시간
	DefaultReadTimeout = 30 * time.Second

	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간 (Slowloris 방어)
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultWriteTimeout 응답 쓰기 최대 대기 시간. DefaultRequestTimeout보다 길어야 타임아웃 응답을 보낼 수 있습니다.
	DefaultWriteTimeout = 65 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결 유휴 최대 시간
	DefaultIdleTimeout = 120 * time.Second

	// DefaultMaxBodySize 요청 본문의 최대 크기
	DefaultMaxBodySize = "128K"

	// DefaultRateLimitPerSecond IP별 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP별 버스트 허용량
	DefaultRateLimitBurst = 40

	// ShutdownTimeout Graceful Shutdown 시 최대 대기 시간
	ShutdownTimeout = 5 * time.Second
)

// 장바구니 식별 쿠키 설정입니다.
const (
	// CartCookieName 장바구니 식별자를 담는 쿠키 이름
	CartCookieName = "zzirit_cart_id"

	// CartCookieMaxAge 장바구니 쿠키 유효 기간 (30일)
	CartCookieMaxAge = 30 * 24 * time.Hour
)
