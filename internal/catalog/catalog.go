// Package catalog 상품 및 타임딜 목 데이터를 적재하고 상품 식별자로 조회하는 기능을 제공합니다.
//
// Catalog는 적재 시점의 스냅샷이며 불변입니다. 재적재는 Store가 새 스냅샷으로 교체하는 방식으로 처리합니다.
package catalog

import "time"

// Catalog 상품 목록과 타임딜 캠페인 목록의 불변 스냅샷입니다.
type Catalog struct {
	items    []Item
	index    map[int64]int
	deals    []TimeDeal
	loadedAt time.Time
}

// New 주어진 상품과 캠페인으로 Catalog를 생성합니다.
// 같은 식별자를 가진 상품이 여러 건이면 먼저 나온 상품이 조회됩니다.
func New(items []Item, deals []TimeDeal) *Catalog {
	c := &Catalog{
		items:    items,
		index:    make(map[int64]int, len(items)),
		deals:    deals,
		loadedAt: time.Now(),
	}

	for i, item := range items {
		if item.ItemID == 0 {
			continue
		}
		if _, exists := c.index[item.ItemID]; !exists {
			c.index[item.ItemID] = i
		}
	}

	return c
}

// FindItem 식별자에 해당하는 상품을 반환합니다.
func (c *Catalog) FindItem(id int64) (Item, bool) {
	i, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// FindTimeDealInfo 상품이 포함된 타임딜 캠페인을 찾아 가격 정보를 반환합니다.
//
// 캠페인 목록을 순서대로 살펴보고 각 캠페인의 상품 목록에서 처음 일치하는 항목을 사용합니다.
// 여러 캠페인에 같은 상품이 있더라도 첫 번째 캠페인만 적용됩니다.
func (c *Catalog) FindTimeDealInfo(id int64) (TimeDealInfo, bool) {
	for _, deal := range c.deals {
		for _, item := range deal.Items {
			if item.ItemID != id {
				continue
			}

			return TimeDealInfo{
				DiscountRate:  deal.DiscountRate,
				OriginalPrice: item.OriginalPrice,
				FinalPrice:    item.FinalPrice,
				Quantity:      item.Quantity,
				EndTime:       deal.EndTime,
			}, true
		}
	}

	return TimeDealInfo{}, false
}

// Items 상품 목록의 복사본을 반환합니다.
func (c *Catalog) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// ItemCount 적재된 상품 레코드 수입니다.
func (c *Catalog) ItemCount() int {
	return len(c.items)
}

// TimeDealCount 적재된 캠페인 수입니다.
func (c *Catalog) TimeDealCount() int {
	return len(c.deals)
}

// LoadedAt 스냅샷이 생성된 시각입니다.
func (c *Catalog) LoadedAt() time.Time {
	return c.loadedAt
}
