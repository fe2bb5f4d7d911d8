// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 시스템 수준의 API를 처리합니다.
package system

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/darkkaiser/zzirit-storefront/internal/catalog"
	"github.com/darkkaiser/zzirit-storefront/internal/pkg/version"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/constants"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/model/system"
	applog "github.com/darkkaiser/zzirit-storefront/pkg/log"
	"github.com/labstack/echo/v4"
)

// healthCheckTimeout 의존성 하나의 상태 확인에 허용하는 최대 시간
const healthCheckTimeout = 3 * time.Second

// HealthChecker 상태 확인이 가능한 의존성입니다. cart.Service가 구현합니다.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	catalog   catalog.Source
	cartStore HealthChecker

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(source catalog.Source, cartStore HealthChecker, buildInfo version.Info) *Handler {
	if source == nil {
		panic(constants.PanicMsgCatalogSourceRequired)
	}
	if cartStore == nil {
		panic(constants.PanicMsgCartServiceRequired)
	}

	return &Handler{
		catalog:   source,
		cartStore: cartStore,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 외부 의존성의 상태를 확인합니다.
// @Description 모니터링 시스템에서 사용되며, 의존성 중 하나라도 비정상이면 503을 반환합니다.
// @Description
// @Description 응답 필드:
// @Description - status: 전체 서버 상태 (healthy, unhealthy)
// @Description - uptime: 서버 가동 시간(초)
// @Description - dependencies: 외부 의존성별 상태 (catalog, cart_store)
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Failure 503 {object} system.HealthResponse "의존성 비정상"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	deps := map[string]system.DependencyStatus{
		constants.DependencyCatalog:   h.catalogStatus(),
		constants.DependencyCartStore: h.cartStoreStatus(c.Request().Context()),
	}

	code := http.StatusOK
	serverStatus := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			code = http.StatusServiceUnavailable
			serverStatus = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(code, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: deps,
	})
}

func (h *Handler) catalogStatus() system.DependencyStatus {
	current := h.catalog.Current()
	if current == nil {
		return system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: constants.MsgDepStatusCatalogEmpty,
		}
	}

	return system.DependencyStatus{
		Status: constants.HealthStatusHealthy,
		Message: fmt.Sprintf("상품 %d개, 타임딜 %d건 (적재 시각: %s)",
			current.ItemCount(), current.TimeDealCount(), current.LoadedAt().Format(time.RFC3339)),
	}
}

func (h *Handler) cartStoreStatus(ctx context.Context) system.DependencyStatus {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	start := time.Now()
	err := h.cartStore.Health(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return system.DependencyStatus{
			Status:    constants.HealthStatusUnhealthy,
			LatencyMs: latency,
			Message:   err.Error(),
		}
	}

	return system.DependencyStatus{
		Status:    constants.HealthStatusHealthy,
		LatencyMs: latency,
		Message:   constants.MsgDepStatusHealthy,
	}
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
		DirtyBuild:  h.buildInfo.DirtyBuild,
	})
}
