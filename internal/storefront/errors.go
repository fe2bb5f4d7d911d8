package storefront

import (
	apperrors "github.com/darkkaiser/zzirit-storefront/internal/pkg/errors"
)

// ErrAddToCartPending 이전 장바구니 담기 요청이 처리 중일 때 새 요청을 거부하는 에러입니다.
var ErrAddToCartPending = apperrors.New(apperrors.Conflict, "장바구니 담기 요청을 처리하고 있습니다")

// ErrNoTimeDeal 타임딜이 적용되지 않는 상품의 남은 시간을 요청한 경우의 에러입니다.
var ErrNoTimeDeal = apperrors.New(apperrors.NotFound, "타임딜이 적용되지 않는 상품입니다")

// NewErrItemNotFound 식별자에 해당하는 상품이 없을 때의 에러를 생성합니다.
func NewErrItemNotFound(rawID string) error {
	return apperrors.Newf(apperrors.NotFound, "상품을 찾을 수 없습니다 (id=%q)", rawID)
}
