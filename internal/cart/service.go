package cart

import (
	"context"
	"strings"
	"time"

	"github.com/darkkaiser/zzirit-storefront/internal/catalog"
	applog "github.com/darkkaiser/zzirit-storefront/pkg/log"
)

// Service 카탈로그를 기준으로 장바구니 담기 요청을 검증하고 저장소에 반영합니다.
type Service struct {
	store   Store
	catalog catalog.Source

	now func() time.Time
}

// NewService 새로운 Service를 생성합니다.
func NewService(store Store, source catalog.Source) *Service {
	return &Service{
		store:   store,
		catalog: source,
		now:     time.Now,
	}
}

// Add 상품을 장바구니에 담습니다.
//
// 타임딜 가격으로 담는 요청은 상품이 캠페인에 포함되어 있고, 캠페인이 종료되지 않았으며,
// 남은 수량이 요청 수량 이상인 경우에만 허용됩니다.
func (s *Service) Add(ctx context.Context, req AddRequest) (Cart, error) {
	req.CartID = strings.TrimSpace(req.CartID)
	if req.CartID == "" {
		return Cart{}, ErrEmptyCartID
	}
	if req.Quantity < 1 {
		return Cart{}, ErrInvalidQuantity
	}

	current := s.catalog.Current()
	if _, ok := current.FindItem(req.ItemID); !ok {
		return Cart{}, ErrItemNotFound
	}

	if req.TimeDeal {
		if err := s.checkTimeDeal(current, req); err != nil {
			return Cart{}, err
		}
	}

	c, err := s.store.AddLine(ctx, req.CartID, req.line())
	if err != nil {
		return Cart{}, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"cart_id":   req.CartID,
		"item_id":   req.ItemID,
		"quantity":  req.Quantity,
		"time_deal": req.TimeDeal,
		"lines":     len(c.Lines),
	}).Debug("장바구니 담기 완료")

	return c, nil
}

func (s *Service) checkTimeDeal(current *catalog.Catalog, req AddRequest) error {
	info, ok := current.FindTimeDealInfo(req.ItemID)
	if !ok {
		return ErrNotTimeDealItem
	}
	if info.EndTime != nil && !info.EndTime.After(s.now()) {
		return ErrTimeDealEnded
	}
	if info.Quantity != nil && *info.Quantity < req.Quantity {
		return NewErrTimeDealSoldOut(*info.Quantity)
	}
	return nil
}

// Get 장바구니를 조회합니다.
func (s *Service) Get(ctx context.Context, cartID string) (Cart, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return Cart{}, ErrEmptyCartID
	}
	return s.store.Get(ctx, cartID)
}

// Health 장바구니 저장소의 상태를 확인합니다.
func (s *Service) Health(ctx context.Context) error {
	return s.store.Health(ctx)
}
