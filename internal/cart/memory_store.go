package cart

import (
	"context"
	"sync"

	"github.com/darkkaiser/zzirit-storefront/pkg/concurrency"
)

// MemoryStore 프로세스 메모리에 장바구니를 보관하는 저장소입니다.
// 같은 장바구니에 대한 변경은 KeyedMutex로 직렬화되고, 서로 다른 장바구니는 병렬로 처리됩니다.
type MemoryStore struct {
	locks *concurrency.KeyedMutex[string]

	mu    sync.RWMutex
	carts map[string][]Line
}

// NewMemoryStore 비어있는 MemoryStore를 생성합니다.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		locks: concurrency.NewKeyedMutex[string](),
		carts: make(map[string][]Line),
	}
}

func (s *MemoryStore) AddLine(ctx context.Context, cartID string, line Line) (Cart, error) {
	if err := ctx.Err(); err != nil {
		return Cart{}, err
	}

	var result Cart
	err := s.locks.Do(cartID, func() error {
		s.mu.RLock()
		lines := append([]Line(nil), s.carts[cartID]...)
		s.mu.RUnlock()

		merged := false
		for i := range lines {
			if lines[i].ItemID == line.ItemID && lines[i].TimeDeal == line.TimeDeal {
				lines[i].Quantity += line.Quantity
				merged = true
				break
			}
		}
		if !merged {
			lines = append(lines, line)
		}

		s.mu.Lock()
		s.carts[cartID] = lines
		s.mu.Unlock()

		result = Cart{ID: cartID, Lines: append([]Line(nil), lines...)}
		return nil
	})

	return result, err
}

func (s *MemoryStore) Get(ctx context.Context, cartID string) (Cart, error) {
	if err := ctx.Err(); err != nil {
		return Cart{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return Cart{ID: cartID, Lines: append([]Line(nil), s.carts[cartID]...)}, nil
}

func (s *MemoryStore) Health(context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
