package cart

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/darkkaiser/zzirit-storefront/internal/config"
	applog "github.com/darkkaiser/zzirit-storefront/pkg/log"
	"github.com/darkkaiser/zzirit-storefront/pkg/strutil"
	"github.com/go-redis/redis/v8"
)

const component = "cart"

// pingTimeout 저장소 생성 시 Redis 연결 확인에 허용하는 최대 시간입니다.
const pingTimeout = 5 * time.Second

// RedisStore 장바구니 하나를 Redis 해시 하나로 보관하는 저장소입니다.
//
// 해시 필드는 "{itemId}:{0|1}" 형식이며 값은 수량입니다. 수량 증가는 HINCRBY로 처리되므로
// 여러 인스턴스가 같은 장바구니를 동시에 변경해도 수량이 유실되지 않습니다.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
	ttl       time.Duration
}

// NewRedisStore Redis에 연결하고 연결 상태를 확인한 뒤 RedisStore를 생성합니다.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, NewErrStoreUnavailable(err)
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"addr":       cfg.Addr,
		"password":   strutil.MaskSensitiveData(cfg.Password),
		"db":         cfg.DB,
		"key_prefix": cfg.KeyPrefix,
		"ttl":        cfg.TTL.String(),
	}).Info("Redis 장바구니 저장소 연결 완료")

	return newRedisStore(client, cfg.KeyPrefix, cfg.TTL), nil
}

func newRedisStore(client redis.UniversalClient, keyPrefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (s *RedisStore) key(cartID string) string {
	return s.keyPrefix + cartID
}

func (s *RedisStore) AddLine(ctx context.Context, cartID string, line Line) (Cart, error) {
	key := s.key(cartID)

	var all *redis.StringStringMapCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, lineField(line.ItemID, line.TimeDeal), line.Quantity)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		all = pipe.HGetAll(ctx, key)
		return nil
	})
	if err != nil {
		return Cart{}, NewErrStoreUnavailable(err)
	}

	return cartFromHash(cartID, all.Val())
}

func (s *RedisStore) Get(ctx context.Context, cartID string) (Cart, error) {
	fields, err := s.client.HGetAll(ctx, s.key(cartID)).Result()
	if err != nil {
		return Cart{}, NewErrStoreUnavailable(err)
	}

	return cartFromHash(cartID, fields)
}

// Health PING 명령으로 Redis 연결 상태를 확인합니다.
func (s *RedisStore) Health(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return NewErrStoreUnavailable(err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func lineField(itemID int64, timeDeal bool) string {
	if timeDeal {
		return fmt.Sprintf("%d:1", itemID)
	}
	return fmt.Sprintf("%d:0", itemID)
}

func parseLineField(field string) (int64, bool, error) {
	id, flag, ok := strings.Cut(field, ":")
	if !ok || (flag != "0" && flag != "1") {
		return 0, false, NewErrCorruptedLine(nil, field)
	}

	itemID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, false, NewErrCorruptedLine(err, field)
	}

	return itemID, flag == "1", nil
}

// cartFromHash HGETALL 결과를 Cart로 변환합니다. 줄은 상품 식별자, 타임딜 여부 순으로 정렬됩니다.
func cartFromHash(cartID string, fields map[string]string) (Cart, error) {
	c := Cart{ID: cartID}

	for field, value := range fields {
		itemID, timeDeal, err := parseLineField(field)
		if err != nil {
			return Cart{}, err
		}

		quantity, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return Cart{}, NewErrCorruptedLine(err, field)
		}

		c.Lines = append(c.Lines, Line{ItemID: itemID, Quantity: quantity, TimeDeal: timeDeal})
	}

	sort.Slice(c.Lines, func(i, j int) bool {
		if c.Lines[i].ItemID != c.Lines[j].ItemID {
			return c.Lines[i].ItemID < c.Lines[j].ItemID
		}
		return !c.Lines[i].TimeDeal && c.Lines[j].TimeDeal
	})

	return c, nil
}
