package storefront

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/darkkaiser/zzirit-storefront/internal/cart"
	apperrors "github.com/darkkaiser/zzirit-storefront/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartAdderFunc func(ctx context.Context, req cart.AddRequest) (cart.Cart, error)

func (f cartAdderFunc) Add(ctx context.Context, req cart.AddRequest) (cart.Cart, error) {
	return f(ctx, req)
}

func succeed(calls *int) CartAdder {
	return cartAdderFunc(func(_ context.Context, req cart.AddRequest) (cart.Cart, error) {
		*calls++
		return cart.Cart{ID: req.CartID}, nil
	})
}

func fail(err error) CartAdder {
	return cartAdderFunc(func(context.Context, cart.AddRequest) (cart.Cart, error) {
		return cart.Cart{}, err
	})
}

func TestPageState_Initial(t *testing.T) {
	t.Parallel()

	s := NewPageState("/cart")
	assert.False(t, s.Pending())
	assert.Equal(t, Dialog{}, s.Dialog())
}

func TestPageState_AddToCart_Success(t *testing.T) {
	t.Parallel()

	calls := 0
	s := NewPageState("/cart")

	require.NoError(t, s.AddToCart(context.Background(), succeed(&calls), cart.AddRequest{CartID: "c", ItemID: 1, Quantity: 1}))

	assert.Equal(t, 1, calls)
	assert.False(t, s.Pending())
	assert.Equal(t, Dialog{
		Open:    true,
		Title:   "장바구니 추가 완료",
		Message: "상품이 장바구니에 추가되었습니다. 이동할까요?",
		Actions: []DialogAction{
			{Label: "계속 쇼핑하기"},
			{Label: "장바구니로 이동", Href: "/cart", Primary: true},
		},
	}, s.Dialog())

	s.CloseDialog()
	assert.Equal(t, Dialog{}, s.Dialog())
}

func TestPageState_AddToCart_Failure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "AppError 메시지", err: apperrors.New(apperrors.Conflict, "종료된 타임딜입니다"), message: "종료된 타임딜입니다"},
		{name: "감싼 에러는 바깥쪽 메시지", err: apperrors.Wrap(errors.New("dial tcp"), apperrors.Unavailable, "저장소 오류"), message: "저장소 오류"},
		{name: "일반 에러 메시지", err: errors.New("네트워크 오류"), message: "네트워크 오류"},
		{name: "메시지 없는 에러", err: errors.New(""), message: "장바구니 담기에 실패했습니다. 다시 시도해주세요."},
		{name: "메시지 없는 AppError", err: apperrors.New(apperrors.Internal, ""), message: "장바구니 담기에 실패했습니다. 다시 시도해주세요."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewPageState("/cart")
			require.NoError(t, s.AddToCart(context.Background(), fail(tt.err), cart.AddRequest{}))

			assert.False(t, s.Pending())
			assert.Equal(t, Dialog{
				Open:    true,
				Error:   true,
				Title:   "오류",
				Message: tt.message,
				Actions: []DialogAction{{Label: "닫기"}},
			}, s.Dialog())

			s.CloseDialog()
			assert.Equal(t, Dialog{}, s.Dialog())
		})
	}
}

func TestPageState_ErrorClearedOnRetry(t *testing.T) {
	t.Parallel()

	calls := 0
	s := NewPageState("/cart")

	require.NoError(t, s.AddToCart(context.Background(), fail(errors.New("실패")), cart.AddRequest{}))
	assert.True(t, s.Dialog().Error)

	require.NoError(t, s.AddToCart(context.Background(), succeed(&calls), cart.AddRequest{}))
	assert.False(t, s.Dialog().Error)
	assert.Equal(t, DialogTitleSuccess, s.Dialog().Title)
}

func TestPageState_RejectsWhilePending(t *testing.T) {
	t.Parallel()

	s := NewPageState("/cart")

	entered := make(chan struct{})
	release := make(chan struct{})
	blocking := cartAdderFunc(func(context.Context, cart.AddRequest) (cart.Cart, error) {
		close(entered)
		<-release
		return cart.Cart{}, nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, s.AddToCart(context.Background(), blocking, cart.AddRequest{}))
	}()

	<-entered
	assert.True(t, s.Pending())
	assert.False(t, s.Dialog().Open)

	calls := 0
	err := s.AddToCart(context.Background(), succeed(&calls), cart.AddRequest{})
	assert.ErrorIs(t, err, ErrAddToCartPending)
	assert.Zero(t, calls)

	close(release)
	wg.Wait()

	assert.False(t, s.Pending())
	assert.True(t, s.Dialog().Open)
}

func TestCartSubmitter_Submit(t *testing.T) {
	t.Parallel()

	calls := 0
	s := NewCartSubmitter(succeed(&calls), "/cart")

	dialog, err := s.Submit(context.Background(), cart.AddRequest{CartID: "c1", ItemID: 10, Quantity: 1})
	require.NoError(t, err)
	assert.True(t, dialog.Open)
	assert.False(t, dialog.Error)
	assert.Equal(t, "/cart", dialog.Actions[1].Href)
	assert.Equal(t, 1, calls)

	// 실패는 오류 대화상자로 전달됩니다.
	s = NewCartSubmitter(fail(apperrors.New(apperrors.Conflict, "이미 종료된 타임딜입니다")), "/cart")
	dialog, err = s.Submit(context.Background(), cart.AddRequest{CartID: "c1", ItemID: 10, Quantity: 1})
	require.NoError(t, err)
	assert.True(t, dialog.Error)
	assert.Equal(t, "이미 종료된 타임딜입니다", dialog.Message)
}

func TestCartSubmitter_RejectsSameCartWhilePending(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	blocking := cartAdderFunc(func(_ context.Context, req cart.AddRequest) (cart.Cart, error) {
		if req.CartID == "busy" && req.ItemID == 10 {
			close(entered)
			<-release
		}
		return cart.Cart{ID: req.CartID}, nil
	})
	s := NewCartSubmitter(blocking, "/cart")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.Submit(context.Background(), cart.AddRequest{CartID: "busy", ItemID: 10, Quantity: 1})
		assert.NoError(t, err)
	}()

	<-entered

	_, err := s.Submit(context.Background(), cart.AddRequest{CartID: "busy", ItemID: 10, Quantity: 1})
	assert.ErrorIs(t, err, ErrAddToCartPending)

	// 다른 장바구니는 영향을 받지 않습니다.
	dialog, err := s.Submit(context.Background(), cart.AddRequest{CartID: "other", ItemID: 10, Quantity: 1})
	require.NoError(t, err)
	assert.True(t, dialog.Open)

	close(release)
	wg.Wait()

	// 처리가 끝나면 다시 받을 수 있습니다.
	_, err = s.Submit(context.Background(), cart.AddRequest{CartID: "busy", ItemID: 11, Quantity: 1})
	assert.NoError(t, err)
	assert.Zero(t, s.inFlight.Len())
}
