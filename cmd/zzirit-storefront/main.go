package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	_ "time/tzdata"

	"github.com/darkkaiser/zzirit-storefront/internal/cart"
	"github.com/darkkaiser/zzirit-storefront/internal/catalog"
	"github.com/darkkaiser/zzirit-storefront/internal/config"
	"github.com/darkkaiser/zzirit-storefront/internal/pkg/version"
	"github.com/darkkaiser/zzirit-storefront/internal/service"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api"
	"github.com/darkkaiser/zzirit-storefront/internal/service/scheduler"
	applog "github.com/darkkaiser/zzirit-storefront/pkg/log"
)

// @title ZZIRIT Storefront API
// @version 1.0.0
// @description ZZIRIT 스토어프론트의 상품 상세 조회, 타임딜 남은 시간 조회, 장바구니 담기 API입니다.
// @description
// @description ## 주요 기능
// @description - 상품 상세 정보 조회 (타임딜 할인가, 남은 수량, 남은 시간 포함)
// @description - 타임딜 남은 시간 조회
// @description - 장바구니 담기 (쿠키 기반 장바구니 식별)

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT
// @license.url https://github.com/DarkKaiser/zzirit-storefront/blob/master/LICENSE

// @BasePath /

const (
	banner = `
  _________  ___ ____  ___ _____   ____  _                  __                 _
 |__  /__  /|_ _|  _ \|_ _|_   _| / ___|| |_ ___  _ __ ___ / _|_ __ ___  _ __ | |_
   / /  / /  | || |_) || |  | |   \___ \| __/ _ \| '__/ _ \ |_| '__/ _ \| '_ \| __|
  / /_ / /_  | ||  _ < | |  | |    ___) | || (_) | | |  __/  _| | | (_) | | | | |_
 /____/____||___|_| \_\___| |_|   |____/ \__\___/|_|  \___|_| |_|  \___/|_| |_|\__|
                                                                          %s
                                                        developed by DarkKaiser
------------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.LoadWithFile(configFilename(os.Args))
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	services, closer, err := newServices(serviceStopCtx, appConfig, buildInfo)
	if err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("서비스 생성 실패")

		appLogCloser.Close()
		os.Exit(1)
	}
	defer closer.Close()

	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel()
			serviceStopWG.Wait()
			closer.Close()
			appLogCloser.Close()

			os.Exit(1)
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC

	applog.WithComponent("main").Info("종료 신호 수신: 서비스를 종료합니다")
	cancel()
	serviceStopWG.Wait()
}

// configFilename 첫 번째 실행 인자를 설정 파일 경로로 사용하고, 없으면 기본 파일명을 반환합니다.
func configFilename(args []string) string {
	if len(args) > 1 && args[1] != "" {
		return args[1]
	}
	return config.DefaultFilename
}

// newServices 카탈로그와 장바구니 저장소를 준비하고, 시작 순서대로 정렬된 서비스 목록을 반환합니다.
// 반환된 io.Closer는 모든 서비스가 종료된 뒤 장바구니 저장소를 닫는 데 사용합니다.
func newServices(ctx context.Context, appConfig *config.AppConfig, buildInfo version.Info) ([]service.Service, io.Closer, error) {
	catalogStore, err := catalog.NewStore(appConfig.Catalog.ItemsFile, appConfig.Catalog.TimeDealsFile, appConfig.Catalog.Location())
	if err != nil {
		return nil, nil, err
	}

	cartStore, err := cart.NewStore(ctx, appConfig.Cart)
	if err != nil {
		return nil, nil, err
	}

	cartService := cart.NewService(cartStore, catalogStore)

	services := []service.Service{
		scheduler.NewService(appConfig.Catalog.Reload, catalogStore),
		api.NewService(appConfig, catalogStore, cartService, buildInfo),
	}

	return services, cartStore, nil
}
