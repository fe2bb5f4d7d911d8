package cart

import (
	"context"

	"github.com/darkkaiser/zzirit-storefront/internal/config"
)

// Store 장바구니 저장소 인터페이스입니다.
type Store interface {
	// AddLine 장바구니에 줄을 추가합니다. 같은 상품과 타임딜 조합의 줄이 이미 있으면 수량을 더합니다.
	AddLine(ctx context.Context, cartID string, line Line) (Cart, error)

	// Get 장바구니를 조회합니다. 없는 장바구니는 빈 Cart를 반환합니다.
	Get(ctx context.Context, cartID string) (Cart, error)

	// Health 저장소를 사용할 수 있는 상태인지 확인합니다.
	Health(ctx context.Context) error

	Close() error
}

// NewStore 설정에 지정된 종류의 저장소를 생성합니다.
func NewStore(ctx context.Context, cfg config.CartConfig) (Store, error) {
	switch cfg.Store {
	case config.CartStoreMemory:
		return NewMemoryStore(), nil
	case config.CartStoreRedis:
		return NewRedisStore(ctx, cfg.Redis)
	default:
		return nil, ErrUnknownStore
	}
}
