package api

import (
	apperrors "github.com/darkkaiser/zzirit-storefront/internal/pkg/errors"
)

var (
	// ErrCatalogSourceNotInitialized 서비스 시작 시 카탈로그 소스가 주입되지 않았을 때 반환하는 에러입니다.
	ErrCatalogSourceNotInitialized = apperrors.New(apperrors.Internal, "카탈로그 소스가 초기화되지 않았습니다")

	// ErrCartServiceNotInitialized 서비스 시작 시 장바구니 서비스가 주입되지 않았을 때 반환하는 에러입니다.
	ErrCartServiceNotInitialized = apperrors.New(apperrors.Internal, "장바구니 서비스가 초기화되지 않았습니다")
)
