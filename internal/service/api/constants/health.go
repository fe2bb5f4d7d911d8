package constants

// 헬스체크 및 시스템 상태 관련 상수입니다.
const (
	// HealthStatusHealthy 헬스체크 상태: 정상
	HealthStatusHealthy = "healthy"

	// HealthStatusUnhealthy 헬스체크 상태: 비정상
	HealthStatusUnhealthy = "unhealthy"

	// DependencyCatalog 외부 의존성 ID: 카탈로그 데이터
	DependencyCatalog = "catalog"

	// DependencyCartStore 외부 의존성 ID: 장바구니 저장소
	DependencyCartStore = "cart_store"

	// MsgDepStatusHealthy 외부 의존성 상태: 정상
	MsgDepStatusHealthy = "정상 작동 중"

	// MsgDepStatusCatalogEmpty 외부 의존성 상태: 카탈로그 미적재
	MsgDepStatusCatalogEmpty = "카탈로그가 적재되지 않았습니다"
)
