// Package config 애플리케이션 설정을 로드하고 검증합니다.
//
// 설정 값은 다음 순서로 병합되며 뒤에 오는 값이 우선합니다.
//
//  1. newDefaultConfig()가 반환하는 기본값
//  2. JSON 설정 파일 (기본: zzirit-storefront.json)
//  3. ZZIRIT_ 접두사를 가진 환경 변수 (예: ZZIRIT_CART__REDIS__ADDR -> cart.redis.addr)
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/zzirit-storefront/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "zzirit-storefront"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 읽는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	EnvPrefix = "ZZIRIT_"
)

const (
	// CartStoreMemory 프로세스 메모리에 장바구니를 보관합니다. 재시작하면 사라집니다.
	CartStoreMemory = "memory"

	// CartStoreRedis Redis 해시에 장바구니를 보관합니다.
	CartStoreRedis = "redis"
)

// newDefaultConfig 설정 파일에 값이 없을 때 적용되는 기본 설정을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug: true,
		Catalog: CatalogConfig{
			ItemsFile:     "data/items.json",
			TimeDealsFile: "data/timedeals.json",
			TimeZone:      "Asia/Seoul",
			Reload: ReloadConfig{
				Runnable: false,
				TimeSpec: "0 */5 * * * *",
			},
		},
		Storefront: StorefrontConfig{
			CartPath:         "/cart",
			CheckoutPath:     "/order",
			ImagePlaceholder: "/images/placeholder.png",
		},
		Cart: CartConfig{
			Store: CartStoreMemory,
			Redis: RedisConfig{
				KeyPrefix: "zzirit:cart:",
				TTL:       72 * time.Hour,
			},
		},
		Web: WebConfig{
			WS: WSConfig{
				ListenPort: 8080,
			},
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
		},
	}
}

// normalizeEnvKey 환경 변수 이름을 koanf 키 경로로 변환합니다.
// 이중 언더스코어(__)는 계층 구분자(.)가 됩니다.
//
//	ZZIRIT_CART__REDIS__ADDR -> cart.redis.addr
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	// 3. 환경 변수 로드 (최우선 순위)
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true, // 구조체에 없는 키가 있으면 오타로 간주합니다.
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}
