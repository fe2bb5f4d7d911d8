package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	apperrors "github.com/darkkaiser/zzirit-storefront/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seoul(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	return loc
}

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := Load(filepath.Join("testdata", "items.json"), filepath.Join("testdata", "timedeals.json"), seoul(t))
	require.NoError(t, err)
	return c
}

func int64Ptr(v int64) *int64 { return &v }

func float64Ptr(v float64) *float64 { return &v }

func TestLoad_Counts(t *testing.T) {
	t.Parallel()

	c := loadTestCatalog(t)

	assert.Equal(t, 8, c.ItemCount(), "객체가 아닌 레코드만 제외되어야 합니다")
	assert.Equal(t, 3, c.TimeDealCount())
	assert.False(t, c.LoadedAt().IsZero())
}

func TestCatalog_FindItem(t *testing.T) {
	t.Parallel()

	c := loadTestCatalog(t)
	loc := seoul(t)

	t.Run("성공: 모든 필드", func(t *testing.T) {
		t.Parallel()

		item, ok := c.FindItem(10)
		require.True(t, ok)

		assert.Equal(t, int64(10), item.ItemID)
		assert.Equal(t, "무선 이어폰", item.Name)
		assert.Equal(t, "이어폰", item.Type)
		assert.Equal(t, "ZZ", item.Brand)
		assert.Equal(t, int64Ptr(5), item.Quantity)
		assert.Equal(t, float64Ptr(1234567), item.Price)
		assert.Equal(t, TimeDealActive, item.TimeDealStatus)
		require.NotNil(t, item.EndTimeDeal)
		assert.True(t, item.EndTimeDeal.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, loc)), "시간대 없는 값은 카탈로그 시간대로 해석해야 합니다")
	})

	t.Run("성공: 중복 식별자는 먼저 나온 상품", func(t *testing.T) {
		t.Parallel()

		item, ok := c.FindItem(10)
		require.True(t, ok)
		assert.NotEqual(t, "중복 상품", item.Name)
	})

	t.Run("성공: 선택 필드 누락", func(t *testing.T) {
		t.Parallel()

		item, ok := c.FindItem(12)
		require.True(t, ok)

		assert.Nil(t, item.Price)
		assert.Nil(t, item.Quantity)
		assert.Nil(t, item.EndTimeDeal)
		assert.Empty(t, item.Type)
		assert.Equal(t, TimeDealUnknown, item.TimeDealStatus, "알 수 없는 상태 문자열")
	})

	t.Run("성공: 숫자 문자열", func(t *testing.T) {
		t.Parallel()

		item, ok := c.FindItem(13)
		require.True(t, ok)

		assert.Equal(t, int64Ptr(7), item.Quantity)
		assert.Equal(t, float64Ptr(15000), item.Price)
		assert.Equal(t, TimeDealNone, item.TimeDealStatus)
	})

	t.Run("성공: 형식이 맞지 않는 필드는 비어있음", func(t *testing.T) {
		t.Parallel()

		item, ok := c.FindItem(14)
		require.True(t, ok)

		assert.Equal(t, "잘못된 필드 상품", item.Name)
		assert.Nil(t, item.Quantity)
		assert.Nil(t, item.Price)
		assert.Nil(t, item.EndTimeDeal)
	})

	t.Run("성공: UTC 종료 시각", func(t *testing.T) {
		t.Parallel()

		item, ok := c.FindItem(15)
		require.True(t, ok)
		require.NotNil(t, item.EndTimeDeal)
		assert.True(t, item.EndTimeDeal.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, loc)))
	})

	t.Run("실패: 존재하지 않는 식별자", func(t *testing.T) {
		t.Parallel()

		for _, id := range []int64{0, 9, 999, -10} {
			_, ok := c.FindItem(id)
			assert.False(t, ok, "id=%d", id)
		}
	})
}

func TestCatalog_FindItem_AllRecords(t *testing.T) {
	t.Parallel()

	c, err := Load(filepath.Join("..", "..", "data", "items.json"), filepath.Join("..", "..", "data", "timedeals.json"), seoul(t))
	require.NoError(t, err)

	for _, item := range c.Items() {
		found, ok := c.FindItem(item.ItemID)
		assert.True(t, ok, "itemId=%d", item.ItemID)
		assert.Equal(t, item.ItemID, found.ItemID)
	}
}

func TestCatalog_FindTimeDealInfo(t *testing.T) {
	t.Parallel()

	c := loadTestCatalog(t)
	loc := seoul(t)

	t.Run("성공: 첫 번째 캠페인이 우선", func(t *testing.T) {
		t.Parallel()

		info, ok := c.FindTimeDealInfo(10)
		require.True(t, ok)

		assert.Equal(t, float64(20), info.DiscountRate)
		assert.Equal(t, float64Ptr(1234567), info.OriginalPrice)
		assert.Equal(t, float64Ptr(987654), info.FinalPrice)
		assert.Equal(t, int64Ptr(3), info.Quantity)
		require.NotNil(t, info.EndTime)
		assert.True(t, info.EndTime.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, loc)))
	})

	t.Run("성공: 캠페인 값과 상품별 값의 결합", func(t *testing.T) {
		t.Parallel()

		info, ok := c.FindTimeDealInfo(15)
		require.True(t, ok)

		assert.Equal(t, float64(50), info.DiscountRate)
		assert.Equal(t, float64Ptr(500), info.FinalPrice)
		assert.Nil(t, info.Quantity)
		require.NotNil(t, info.EndTime)
		assert.True(t, info.EndTime.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, loc)))
	})

	t.Run("성공: 종료 시각 없는 캠페인", func(t *testing.T) {
		t.Parallel()

		info, ok := c.FindTimeDealInfo(13)
		require.True(t, ok)
		assert.Equal(t, 12.5, info.DiscountRate)
		assert.Nil(t, info.EndTime)
	})

	t.Run("성공: 캠페인에 없는 상품", func(t *testing.T) {
		t.Parallel()

		_, ok := c.FindTimeDealInfo(11)
		assert.False(t, ok)
	})

	t.Run("식별자 없는 캠페인 항목은 0과도 일치하지 않음", func(t *testing.T) {
		t.Parallel()

		_, ok := c.FindTimeDealInfo(0)
		assert.False(t, ok)
	})
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	valid := []byte(`{"result":{"content":[]}}`)

	tests := []struct {
		name      string
		items     []byte
		timeDeals []byte
		errorMsg  string
	}{
		{name: "실패: 상품 JSON 형식 오류", items: []byte(`{"result":`), timeDeals: valid, errorMsg: "상품 데이터가 올바른 JSON"},
		{name: "실패: 타임딜 content 누락", items: valid, timeDeals: []byte(`{"result":{}}`), errorMsg: "타임딜 데이터에 result.content"},
		{name: "실패: content가 배열이 아님", items: []byte(`{"result":{"content":{}}}`), timeDeals: valid, errorMsg: "result.content 배열이 없습니다"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.items, tt.timeDeals, time.UTC)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ParsingFailed))
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}

	t.Run("성공: 빈 목록", func(t *testing.T) {
		t.Parallel()

		c, err := Parse(valid, valid, nil)
		require.NoError(t, err)
		assert.Zero(t, c.ItemCount())
		_, ok := c.FindTimeDealInfo(1)
		assert.False(t, ok)
	})
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	items := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(items, []byte(`{"result":{"content":[]}}`), 0o644))

	_, err := Load(filepath.Join(dir, "missing.json"), items, time.UTC)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.System))
	assert.Contains(t, err.Error(), "상품 데이터 파일을 읽을 수 없습니다")

	_, err = Load(items, filepath.Join(dir, "missing.json"), time.UTC)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "타임딜 데이터 파일을 읽을 수 없습니다")
}
