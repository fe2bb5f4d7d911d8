package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/darkkaiser/zzirit-storefront/internal/cart"
	"github.com/darkkaiser/zzirit-storefront/internal/catalog"
	apperrors "github.com/darkkaiser/zzirit-storefront/internal/pkg/errors"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/constants"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/v1/model/response"
	"github.com/darkkaiser/zzirit-storefront/internal/storefront"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct{ c *catalog.Catalog }

func (s staticSource) Current() *catalog.Catalog { return s.c }

var testLinks = storefront.Links{
	CartPath:         "/cart",
	CheckoutPath:     "/order",
	ImagePlaceholder: "/images/placeholder.png",
}

func int64Ptr(v int64) *int64 { return &v }

func float64Ptr(v float64) *float64 { return &v }

// newTestHandler 진행 중인 타임딜(상품 10), 종료된 타임딜(상품 11), 일반 상품(12)으로 구성된 카탈로그의 핸들러를 생성합니다.
func newTestHandler(t *testing.T, now time.Time) (*Handler, *cart.MemoryStore) {
	t.Helper()

	active := now.Add(2*time.Hour + 3*time.Minute + 4*time.Second)
	ended := now.Add(-time.Minute)

	c := catalog.New(
		[]catalog.Item{
			{ItemID: 10, Name: "무선 이어폰", Price: float64Ptr(129000), TimeDealStatus: catalog.TimeDealActive},
			{ItemID: 11, Name: "블루투스 스피커", Price: float64Ptr(59000), TimeDealStatus: catalog.TimeDealActive},
			{ItemID: 12, Name: "충전 케이블", Price: float64Ptr(9900), TimeDealStatus: catalog.TimeDealNone},
		},
		[]catalog.TimeDeal{
			{
				DiscountRate: 20,
				EndTime:      &active,
				Items: []catalog.TimeDealItem{
					{ItemID: 10, OriginalPrice: float64Ptr(129000), FinalPrice: float64Ptr(103200), Quantity: int64Ptr(5)},
				},
			},
			{
				DiscountRate: 10,
				EndTime:      &ended,
				Items: []catalog.TimeDealItem{
					{ItemID: 11, OriginalPrice: float64Ptr(59000), FinalPrice: float64Ptr(53100), Quantity: int64Ptr(3)},
				},
			},
		},
	)

	source := staticSource{c: c}
	store := cart.NewMemoryStore()
	submitter := storefront.NewCartSubmitter(cart.NewService(store, source), testLinks.CartPath)

	h := NewHandler(source, submitter, testLinks)
	h.now = func() time.Time { return now }

	return h, store
}

func TestNewHandler_Panics(t *testing.T) {
	submitter := storefront.NewCartSubmitter(nil, "/cart")

	assert.PanicsWithValue(t, constants.PanicMsgCatalogSourceRequired, func() { NewHandler(nil, submitter, testLinks) })
	assert.PanicsWithValue(t, constants.PanicMsgCartServiceRequired, func() { NewHandler(staticSource{}, nil, testLinks) })
}

func TestGetItemHandler(t *testing.T) {
	now := time.Now()
	h, _ := newTestHandler(t, now)

	t.Run("타임딜 상품", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/items/10", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues("10")

		require.NoError(t, h.GetItemHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp response.ItemDetailResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(10), resp.Item.ItemID)
		assert.Equal(t, "129,000", resp.Item.Price)
		require.NotNil(t, resp.Item.TimeDeal)
		assert.Equal(t, "-20%", resp.Item.TimeDeal.DiscountBadge)
		assert.Equal(t, "103,200", resp.Item.TimeDeal.FinalPrice)
		assert.Equal(t, "2시간 3분 4초 남음", resp.Item.TimeDeal.TimeLeft)
		assert.Equal(t, "/images/placeholder.png", resp.Item.Image.Src)
		assert.Len(t, resp.Item.Policies, 3)
	})

	t.Run("일반 상품", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/items/12", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues("12")

		require.NoError(t, h.GetItemHandler(c))

		var resp response.ItemDetailResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "9,900", resp.Item.Price)
		assert.Nil(t, resp.Item.TimeDeal)
	})

	for _, id := range []string{"999", "abc", "0"} {
		t.Run("없는 상품_"+id, func(t *testing.T) {
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			c.SetParamNames("id")
			c.SetParamValues(id)

			err := h.GetItemHandler(c)
			assert.True(t, apperrors.Is(err, apperrors.NotFound))
		})
	}
}

func TestGetCountdownHandler(t *testing.T) {
	now := time.Now()
	h, _ := newTestHandler(t, now)

	tests := []struct {
		name        string
		id          string
		expectErr   bool
		timeLeft    string
		ended       bool
		remainingMs int64
	}{
		{name: "진행 중", id: "10", timeLeft: "2시간 3분 4초 남음", remainingMs: (2*3600 + 3*60 + 4) * 1000},
		{name: "종료됨", id: "11", timeLeft: "종료됨", ended: true},
		{name: "타임딜 없는 상품", id: "12", expectErr: true},
		{name: "없는 상품", id: "999", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			err := h.GetCountdownHandler(c)
			if tt.expectErr {
				assert.True(t, apperrors.Is(err, apperrors.NotFound))
				return
			}
			require.NoError(t, err)

			var resp response.CountdownResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.timeLeft, resp.Countdown.TimeLeft)
			assert.Equal(t, tt.ended, resp.Countdown.Ended)
			assert.Equal(t, tt.remainingMs, resp.Countdown.RemainingMillis)
		})
	}
}

func TestAddCartItemHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectErrCode int
		dialogError   bool
		dialogMessage string
		expectedLine  *cart.Line
	}{
		{
			name:         "타임딜 여부 생략_카탈로그로 결정",
			body:         `{"item_id":10}`,
			expectedLine: &cart.Line{ItemID: 10, Quantity: 1, TimeDeal: true},
		},
		{
			name:         "일반 상품",
			body:         `{"item_id":12,"quantity":2}`,
			expectedLine: &cart.Line{ItemID: 12, Quantity: 2, TimeDeal: false},
		},
		{
			name:         "타임딜 상품을 정가로 담기",
			body:         `{"item_id":10,"quantity":1,"time_deal":false}`,
			expectedLine: &cart.Line{ItemID: 10, Quantity: 1, TimeDeal: false},
		},
		{
			name:         "종료된 타임딜 상품_정가로 담기",
			body:         `{"item_id":11}`,
			expectedLine: &cart.Line{ItemID: 11, Quantity: 1, TimeDeal: false},
		},
		{
			name:          "종료된 타임딜 가격 요청_오류 대화상자",
			body:          `{"item_id":11,"time_deal":true}`,
			dialogError:   true,
			dialogMessage: "종료된 타임딜입니다",
		},
		{
			name:          "남은 수량 부족_오류 대화상자",
			body:          `{"item_id":10,"quantity":6}`,
			dialogError:   true,
			dialogMessage: "타임딜 남은 수량이 부족합니다 (남은 수량: 5개)",
		},
		{
			name:          "없는 상품_오류 대화상자",
			body:          `{"item_id":999}`,
			dialogError:   true,
			dialogMessage: "상품을 찾을 수 없습니다",
		},
		{
			name:          "상품 ID 누락_400",
			body:          `{"quantity":1}`,
			expectErrCode: http.StatusBadRequest,
		},
		{
			name:          "수량 음수_400",
			body:          `{"item_id":10,"quantity":-1}`,
			expectErrCode: http.StatusBadRequest,
		},
		{
			name:          "잘못된 JSON_400",
			body:          `{"item_id":`,
			expectErrCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, store := newTestHandler(t, time.Now())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			err := h.AddCartItemHandler(c)
			if tt.expectErrCode != 0 {
				var he *echo.HTTPError
				require.ErrorAs(t, err, &he)
				assert.Equal(t, tt.expectErrCode, he.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)

			var resp response.DialogResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.True(t, resp.Dialog.Open)
			assert.Equal(t, tt.dialogError, resp.Dialog.Error)

			cookies := rec.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, constants.CartCookieName, cookies[0].Name)

			got, err := store.Get(c.Request().Context(), cookies[0].Value)
			require.NoError(t, err)

			if tt.dialogError {
				assert.Equal(t, tt.dialogMessage, resp.Dialog.Message)
				assert.Equal(t, storefront.DialogTitleError, resp.Dialog.Title)
				assert.Empty(t, got.Lines)
				return
			}

			assert.Equal(t, storefront.DialogTitleSuccess, resp.Dialog.Title)
			require.Len(t, resp.Dialog.Actions, 2)
			assert.Equal(t, "/cart", resp.Dialog.Actions[1].Href)
			assert.Equal(t, []cart.Line{*tt.expectedLine}, got.Lines)
		})
	}
}

func TestAddCartItemHandler_ReusesCartCookie(t *testing.T) {
	h, store := newTestHandler(t, time.Now())
	const cartID = "6f1c2f0e-8f5b-4a4b-9a51-3c1b0a7d2e11"

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"item_id":12}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.AddCookie(&http.Cookie{Name: constants.CartCookieName, Value: cartID})
		c := echo.New().NewContext(req, httptest.NewRecorder())

		require.NoError(t, h.AddCartItemHandler(c))
	}

	got, err := store.Get(t.Context(), cartID)
	require.NoError(t, err)
	assert.Equal(t, []cart.Line{{ItemID: 12, Quantity: 2}}, got.Lines)
}
