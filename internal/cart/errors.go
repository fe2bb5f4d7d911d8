package cart

import (
	apperrors "github.com/darkkaiser/zzirit-storefront/internal/pkg/errors"
)

var (
	// ErrEmptyCartID 장바구니 식별자 없이 요청한 경우의 에러입니다.
	ErrEmptyCartID = apperrors.New(apperrors.InvalidInput, "장바구니 식별자가 비어 있습니다")

	// ErrInvalidQuantity 담으려는 수량이 1 미만인 경우의 에러입니다.
	ErrInvalidQuantity = apperrors.New(apperrors.InvalidInput, "담을 수량은 1개 이상이어야 합니다")

	// ErrItemNotFound 카탈로그에 없는 상품을 담으려 한 경우의 에러입니다.
	ErrItemNotFound = apperrors.New(apperrors.NotFound, "상품을 찾을 수 없습니다")

	// ErrNotTimeDealItem 타임딜이 적용되지 않는 상품을 타임딜 가격으로 담으려 한 경우의 에러입니다.
	ErrNotTimeDealItem = apperrors.New(apperrors.Conflict, "타임딜이 적용되지 않는 상품입니다")

	// ErrTimeDealEnded 이미 종료된 타임딜 상품을 담으려 한 경우의 에러입니다.
	ErrTimeDealEnded = apperrors.New(apperrors.Conflict, "종료된 타임딜입니다")

	// ErrUnknownStore 설정에 지정된 저장소 종류를 지원하지 않는 경우의 에러입니다.
	ErrUnknownStore = apperrors.New(apperrors.InvalidInput, "지원하지 않는 장바구니 저장소입니다")
)

// NewErrTimeDealSoldOut 타임딜 남은 수량보다 많이 담으려 한 경우의 에러를 생성합니다.
func NewErrTimeDealSoldOut(remaining int64) error {
	return apperrors.Newf(apperrors.Conflict, "타임딜 남은 수량이 부족합니다 (남은 수량: %d개)", remaining)
}

// NewErrStoreUnavailable 저장소 연결 또는 명령 실행에 실패한 경우의 에러를 생성합니다.
func NewErrStoreUnavailable(err error) error {
	return apperrors.Wrap(err, apperrors.Unavailable, "장바구니 저장소를 일시적으로 사용할 수 없습니다")
}

// NewErrCorruptedLine 저장소에 기록된 값을 해석할 수 없는 경우의 에러를 생성합니다.
func NewErrCorruptedLine(err error, field string) error {
	if err == nil {
		return apperrors.Newf(apperrors.Internal, "장바구니 데이터를 해석할 수 없습니다 (field=%q)", field)
	}
	return apperrors.Wrapf(err, apperrors.Internal, "장바구니 데이터를 해석할 수 없습니다 (field=%q)", field)
}
