package catalog

import (
	"sync"
	"sync/atomic"
	"time"

	applog "github.com/darkkaiser/zzirit-storefront/pkg/log"
)

// Source 현재 카탈로그 스냅샷을 제공하는 인터페이스입니다.
type Source interface {
	Current() *Catalog
}

// Store 파일에서 적재한 카탈로그 스냅샷을 보관하고 재적재 시 원자적으로 교체합니다.
//
// 조회는 잠금 없이 Current()로 수행되며, Reload()끼리만 서로 직렬화됩니다.
type Store struct {
	itemsFile     string
	timeDealsFile string
	loc           *time.Location

	current atomic.Pointer[Catalog]

	reloadMu sync.Mutex
}

// NewStore 파일을 읽어 초기 스냅샷을 적재한 Store를 생성합니다.
func NewStore(itemsFile, timeDealsFile string, loc *time.Location) (*Store, error) {
	s := &Store{
		itemsFile:     itemsFile,
		timeDealsFile: timeDealsFile,
		loc:           loc,
	}

	if err := s.Reload(); err != nil {
		return nil, err
	}

	return s, nil
}

// Current 현재 스냅샷을 반환합니다.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Reload 파일을 다시 읽어 스냅샷을 교체합니다.
// 실패하면 기존 스냅샷을 그대로 유지하고 에러를 반환합니다.
func (s *Store) Reload() error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	c, err := Load(s.itemsFile, s.timeDealsFile, s.loc)
	if err != nil {
		return err
	}

	s.current.Store(c)

	applog.WithComponentAndFields(component, applog.Fields{
		"items_file":      s.itemsFile,
		"time_deals_file": s.timeDealsFile,
		"items":           c.ItemCount(),
		"time_deals":      c.TimeDealCount(),
	}).Info("카탈로그 적재 완료")

	return nil
}
