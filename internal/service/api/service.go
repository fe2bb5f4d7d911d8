// Package api 상품 상세 페이지와 JSON API를 제공하는 HTTP 서비스를 구성합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/zzirit-storefront/docs"
	"github.com/darkkaiser/zzirit-storefront/internal/catalog"
	"github.com/darkkaiser/zzirit-storefront/internal/config"
	"github.com/darkkaiser/zzirit-storefront/internal/pkg/version"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/constants"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/handler/system"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/page"
	v1handler "github.com/darkkaiser/zzirit-storefront/internal/service/api/v1/handler"
	"github.com/darkkaiser/zzirit-storefront/internal/storefront"
	applog "github.com/darkkaiser/zzirit-storefront/pkg/log"
	"github.com/labstack/echo/v4"
)

// CartService 장바구니 담기와 저장소 상태 확인을 제공하는 인터페이스입니다. cart.Service가 구현합니다.
type CartService interface {
	storefront.CartAdder
	system.HealthChecker
}

// Service 스토어프론트 HTTP 서버의 생명주기를 관리하는 서비스입니다.
//
// Start로 시작하면 별도의 고루틴에서 서버가 동작하며, serviceStopCtx가 취소되면
// Graceful Shutdown을 수행한 뒤 serviceStopWG.Done()을 호출합니다.
type Service struct {
	appConfig *config.AppConfig

	catalog     catalog.Source
	cartService CartService

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, source catalog.Source, cartService CartService, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if source == nil {
		panic(constants.PanicMsgCatalogSourceRequired)
	}
	if cartService == nil {
		panic(constants.PanicMsgCartServiceRequired)
	}

	return &Service{
		appConfig: appConfig,

		catalog:     source,
		cartService: cartService,

		buildInfo: buildInfo,
	}
}

// Start 서비스를 시작합니다. 서버는 고루틴에서 실행되며 이 함수는 즉시 반환됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.catalog == nil {
		defer serviceStopWG.Done()
		return ErrCatalogSourceNotInitialized
	}
	if s.cartService == nil {
		defer serviceStopWG.Done()
		return ErrCartServiceNotInitialized
	}

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 핸들러와 미들웨어 체인, 라우트가 모두 구성된 Echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	links := storefront.Links{
		CartPath:         s.appConfig.Storefront.CartPath,
		CheckoutPath:     s.appConfig.Storefront.CheckoutPath,
		ImagePlaceholder: s.appConfig.Storefront.ImagePlaceholder,
	}

	// 페이지와 JSON API가 같은 제출기를 공유해야 같은 장바구니의 중복 제출을 함께 막을 수 있습니다.
	submitter := storefront.NewCartSubmitter(s.cartService, links.CartPath)

	handlers := Handlers{
		System: system.NewHandler(s.catalog, s.cartService, s.buildInfo),
		Page:   page.NewHandler(s.catalog, submitter, links),
		V1:     v1handler.NewHandler(s.catalog, submitter, links),
	}

	e := NewHTTPServer(HTTPServerConfig{
		Debug:        s.appConfig.Debug,
		EnableHSTS:   s.appConfig.Web.WS.TLSServer,
		AllowOrigins: s.appConfig.Web.CORS.AllowOrigins,
		Renderer:     page.MustNewRenderer(),
	})

	RegisterRoutes(e, handlers)

	return e
}

// startHTTPServer 설정에 따라 HTTP 또는 HTTPS 서버를 시작하고, 서버가 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.Web.WS.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
		"tls":  s.appConfig.Web.WS.TLSServer,
	}).Info(constants.LogMsgServiceHTTPServerStarting)

	var err error
	if s.appConfig.Web.WS.TLSServer {
		err = e.StartTLS(
			fmt.Sprintf(":%d", port),
			s.appConfig.Web.WS.TLSCertFile,
			s.appConfig.Web.WS.TLSKeyFile,
		)
	} else {
		err = e.Start(fmt.Sprintf(":%d", port))
	}

	s.handleServerError(err)
}

// handleServerError 서버 종료 원인에 따라 로그 레벨을 달리하여 기록합니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.Web.WS.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호 또는 서버의 조기 종료를 기다린 뒤 서비스를 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 이미 종료된 경우
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
