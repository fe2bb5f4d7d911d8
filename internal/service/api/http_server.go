package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/zzirit-storefront/internal/service/api/constants"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/zzirit-storefront/internal/service/api/middleware"
	applog "github.com/darkkaiser/zzirit-storefront/pkg/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// hstsMaxAge TLS 서버로 동작할 때 Strict-Transport-Security 헤더에 설정할 유효 기간(초, 1년)
const hstsMaxAge = 31536000

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// EnableHSTS HTTPS로 서비스할 때 HSTS 헤더를 추가할지 여부
	EnableHSTS bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (기본값: 60초)
	RequestTimeout time.Duration

	// Renderer 상세 페이지 템플릿 렌더러 (nil이면 HTML 페이지를 제공하지 않음)
	Renderer echo.Renderer
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 핸들러 및 이후 미들웨어에서 발생한 panic을 복구하고 스택과 함께 로깅
//  2. RequestID - 요청마다 UUID 형식의 X-Request-ID 헤더를 부여 (로그의 request_id)
//  3. ServerHeader - 응답의 Server 헤더 제거
//  4. HTTPLogger - 요청/응답 로깅 (민감한 쿼리 파라미터는 마스킹)
//  5. RateLimit - IP별 초당 요청 수 제한 (초과 시 429)
//  6. BodyLimit - 요청 본문 크기 제한 (초과 시 413)
//  7. Timeout - 요청 처리 시간 제한 (초과 시 503)
//  8. CORS - 허용된 Origin의 교차 출처 요청 처리
//  9. Secure - 보안 헤더 추가
//
// 라우트는 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 등록해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 내부 로그도 애플리케이션 로거로 출력합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	if cfg.Renderer != nil {
		e.Renderer = cfg.Renderer
	}

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	// 1. Panic 복구
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	// 3. Server 헤더 제거
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	// 4. HTTP 로깅 (429/503 응답도 기록되도록 RateLimit/Timeout보다 앞에 둡니다)
	e.Use(appmiddleware.HTTPLogger())
	// 5. Rate Limit
	e.Use(appmiddleware.RateLimit(constants.DefaultRateLimitPerSecond, constants.DefaultRateLimitBurst))
	// 6. Body Limit
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	// 7. Timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	}))
	// 8. CORS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost},
	}))
	// 9. 보안 헤더
	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = hstsMaxAge
	}
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}
