package storefront

import (
	"context"
	"sync"

	"github.com/darkkaiser/zzirit-storefront/internal/cart"
	apperrors "github.com/darkkaiser/zzirit-storefront/internal/pkg/errors"
	"github.com/darkkaiser/zzirit-storefront/pkg/concurrency"
)

// 장바구니 담기 결과 대화상자 문구
const (
	DialogTitleSuccess   = "장바구니 추가 완료"
	DialogMessageSuccess = "상품이 장바구니에 추가되었습니다. 이동할까요?"
	DialogTitleError     = "오류"

	// DefaultAddToCartError 실패 원인에 메시지가 없을 때 표시하는 문구입니다.
	DefaultAddToCartError = "장바구니 담기에 실패했습니다. 다시 시도해주세요."

	ActionContinueShopping = "계속 쇼핑하기"
	ActionGoToCart         = "장바구니로 이동"
	ActionClose            = "닫기"
)

// CartAdder 장바구니 담기를 수행하는 인터페이스입니다. cart.Service가 구현합니다.
type CartAdder interface {
	Add(ctx context.Context, req cart.AddRequest) (cart.Cart, error)
}

// DialogAction 대화상자 버튼 하나입니다.
// Href가 비어 있으면 대화상자를 닫는 버튼이고, 그렇지 않으면 해당 경로로 이동하는 버튼입니다.
type DialogAction struct {
	Label   string `json:"label"`
	Href    string `json:"href,omitempty"`
	Primary bool   `json:"primary"`
}

// Dialog 장바구니 담기 결과 대화상자의 표시 상태입니다.
type Dialog struct {
	Open    bool           `json:"open"`
	Error   bool           `json:"error"`
	Title   string         `json:"title,omitempty"`
	Message string         `json:"message,omitempty"`
	Actions []DialogAction `json:"actions,omitempty"`
}

// PageState 상세 페이지 한 화면의 장바구니 담기 상호작용 상태입니다.
//
// 상태는 대기(idle)와 처리 중(pending) 두 가지이며, 처리 중에 들어온 요청은 ErrAddToCartPending으로 거부됩니다.
// 요청 결과와 관계없이 처리가 끝나면 대기 상태로 돌아갑니다.
type PageState struct {
	cartPath string

	mu         sync.Mutex
	pending    bool
	dialogOpen bool
	errMessage string
}

// NewPageState 대화상자가 닫힌 대기 상태의 PageState를 생성합니다.
func NewPageState(cartPath string) *PageState {
	return &PageState{cartPath: cartPath}
}

// AddToCart 장바구니 담기를 수행하고 결과에 따라 대화상자를 엽니다.
//
// 담기 실패는 대화상자의 오류 메시지로 변환되어 반환값으로 전달되지 않습니다.
// 이미 처리 중인 요청이 있을 때만 ErrAddToCartPending을 반환합니다.
func (s *PageState) AddToCart(ctx context.Context, adder CartAdder, req cart.AddRequest) error {
	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return ErrAddToCartPending
	}
	s.pending = true
	s.errMessage = ""
	s.mu.Unlock()

	_, err := adder.Add(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		message := apperrors.UserMessage(err)
		if message == "" {
			message = DefaultAddToCartError
		}
		s.errMessage = message
	}
	s.dialogOpen = true
	s.pending = false

	return nil
}

// CloseDialog 대화상자를 닫고 오류 메시지를 지웁니다.
func (s *PageState) CloseDialog() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dialogOpen = false
	s.errMessage = ""
}

// Pending 장바구니 담기 요청을 처리 중인지 여부입니다. 처리 중에는 "장바구니 담기" 버튼이 비활성화됩니다.
func (s *PageState) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Dialog 현재 대화상자 표시 상태를 반환합니다.
func (s *PageState) Dialog() Dialog {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dialogOpen {
		return Dialog{}
	}

	if s.errMessage != "" {
		return Dialog{
			Open:    true,
			Error:   true,
			Title:   DialogTitleError,
			Message: s.errMessage,
			Actions: []DialogAction{{Label: ActionClose}},
		}
	}

	return Dialog{
		Open:    true,
		Title:   DialogTitleSuccess,
		Message: DialogMessageSuccess,
		Actions: []DialogAction{
			{Label: ActionContinueShopping},
			{Label: ActionGoToCart, Href: s.cartPath, Primary: true},
		},
	}
}

// CartSubmitter 장바구니별로 담기 요청을 하나씩만 처리하며 결과 대화상자를 만들어 줍니다.
//
// 같은 장바구니에 대한 요청이 처리 중이면 새 요청은 ErrAddToCartPending으로 거부됩니다.
type CartSubmitter struct {
	cartPath string
	adder    CartAdder
	inFlight *concurrency.KeyedMutex[string]
}

// NewCartSubmitter 새로운 CartSubmitter를 생성합니다.
func NewCartSubmitter(adder CartAdder, cartPath string) *CartSubmitter {
	return &CartSubmitter{
		cartPath: cartPath,
		adder:    adder,
		inFlight: concurrency.NewKeyedMutex[string](),
	}
}

// Submit 담기를 수행하고 열린 대화상자 상태를 반환합니다.
func (s *CartSubmitter) Submit(ctx context.Context, req cart.AddRequest) (Dialog, error) {
	if !s.inFlight.TryLock(req.CartID) {
		return Dialog{}, ErrAddToCartPending
	}
	defer s.inFlight.Unlock(req.CartID)

	state := NewPageState(s.cartPath)
	if err := state.AddToCart(ctx, s.adder, req); err != nil {
		return Dialog{}, err
	}

	return state.Dialog(), nil
}
