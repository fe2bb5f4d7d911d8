package config

import (
	"fmt"
	"time"

	apperrors "github.com/darkkaiser/zzirit-storefront/internal/pkg/errors"
	"github.com/darkkaiser/zzirit-storefront/pkg/cronx"
	"github.com/darkkaiser/zzirit-storefront/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug      bool             `json:"debug"`
	Catalog    CatalogConfig    `json:"catalog"`
	Storefront StorefrontConfig `json:"storefront"`
	Cart       CartConfig       `json:"cart"`
	Web        WebConfig        `json:"web"`
}

// validate 설정 파일 로드 직후 각 설정 항목의 정합성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := c.Catalog.validate(v); err != nil {
		return err
	}
	if err := checkStruct(v, c.Storefront, "스토어프론트(storefront)"); err != nil {
		return err
	}
	if err := c.Cart.validate(v); err != nil {
		return err
	}
	if err := c.Web.WS.validate(v); err != nil {
		return err
	}
	if err := c.Web.CORS.validate(v); err != nil {
		return err
	}

	return nil
}

// VerifyRecommendations 운영 환경에서 권장되지 않는 설정을 찾아 경고 메시지로 반환합니다.
// 에러를 발생시키지는 않습니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.Web.WS.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.Web.WS.ListenPort))
	}
	if !c.Debug && c.Cart.Store == CartStoreMemory {
		warnings = append(warnings, "운영 모드에서 메모리 장바구니 저장소를 사용하도록 설정되었습니다. 서버를 재시작하면 장바구니가 모두 사라집니다")
	}

	return warnings
}

// CatalogConfig 상품과 타임딜 목 데이터 파일의 위치와 재적재 주기를 정의하는 구조체
type CatalogConfig struct {
	ItemsFile     string       `json:"items_file" validate:"required,file"`
	TimeDealsFile string       `json:"time_deals_file" validate:"required,file"`
	TimeZone      string       `json:"time_zone" validate:"required,time_zone"`
	Reload        ReloadConfig `json:"reload"`
}

// ReloadConfig 카탈로그 파일을 주기적으로 다시 읽는 스케줄 설정
type ReloadConfig struct {
	Runnable bool   `json:"runnable"`
	TimeSpec string `json:"time_spec"`
}

// Location TimeZone에 해당하는 *time.Location을 반환합니다. 검증을 통과한 설정에서만 호출해야 합니다.
func (c *CatalogConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *CatalogConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "카탈로그(catalog)"); err != nil {
		return err
	}

	if c.Reload.Runnable {
		if err := cronx.Validate(c.Reload.TimeSpec); err != nil {
			return apperrors.Wrap(err, apperrors.InvalidInput, "카탈로그 재적재 스케줄(catalog.reload.time_spec) 설정이 유효하지 않습니다")
		}
	}

	return nil
}

// StorefrontConfig 상세 페이지가 이동하는 경로와 기본 이미지를 정의하는 구조체
type StorefrontConfig struct {
	CartPath         string `json:"cart_path" validate:"required,startswith=/"`
	CheckoutPath     string `json:"checkout_path" validate:"required,startswith=/"`
	ImagePlaceholder string `json:"image_placeholder" validate:"required"`
}

// CartConfig 장바구니 저장소 설정
type CartConfig struct {
	Store string      `json:"store" validate:"oneof=memory redis"`
	Redis RedisConfig `json:"redis"`
}

// RedisConfig Redis 장바구니 저장소의 접속 정보
type RedisConfig struct {
	Addr      string        `json:"addr"`
	Password  string        `json:"password"`
	DB        int           `json:"db" validate:"min=0,max=15"`
	KeyPrefix string        `json:"key_prefix" validate:"required"`
	TTL       time.Duration `json:"ttl"`
}

func (c *CartConfig) validate(v *validator.Validate) error {
	if err := v.Var(c.Store, "oneof=memory redis"); err != nil {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("장바구니 저장소(cart.store)는 'memory' 또는 'redis'여야 합니다: '%s'", c.Store))
	}
	if c.Store != CartStoreRedis {
		return nil
	}

	if err := validation.ValidateAddr(c.Redis.Addr); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "Redis 저장소 사용 시 접속 주소(cart.redis.addr)는 'host:port' 형식이어야 합니다")
	}
	if err := checkStruct(v, c.Redis, "Redis 저장소(cart.redis)"); err != nil {
		return err
	}
	if c.Redis.TTL < 0 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("장바구니 보관 기간(cart.redis.ttl)은 음수일 수 없습니다: '%v'", c.Redis.TTL))
	}

	return nil
}

// WebConfig 웹 서버 설정
type WebConfig struct {
	WS   WSConfig   `json:"ws"`
	CORS CORSConfig `json:"cors"`
}

// WSConfig 웹 서버의 포트 및 TLS(HTTPS) 보안 설정을 정의하는 구조체
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

func (c *WSConfig) validate(v *validator.Validate) error {
	err := v.Struct(c)
	if err == nil {
		return nil
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range validationErrors {
			switch fieldErr.StructField() {
			case "ListenPort":
				return apperrors.New(apperrors.InvalidInput, "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
			case "TLSCertFile", "TLSKeyFile":
				if fieldErr.Tag() == "required_if" {
					return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("TLS 서버 활성화 시 %s는 필수입니다", fieldErr.Field()))
				}
				return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지정된 TLS 파일(%s)을 찾을 수 없습니다: '%v'", fieldErr.Field(), fieldErr.Value()))
			}
		}
	}

	return apperrors.Wrap(err, apperrors.InvalidInput, "웹 서버 설정 검증 중 알 수 없는 오류가 발생했습니다")
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책을 설정하는 구조체
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}

	if err := v.Struct(c); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				if fieldErr.Tag() == "cors_origin" {
					return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fieldErr.Value()))
				}
			}
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, "CORS 설정 검증 중 알 수 없는 오류가 발생했습니다")
	}

	return nil
}
