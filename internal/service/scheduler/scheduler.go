// Package scheduler 설정된 Cron 스케줄에 맞춰 카탈로그 데이터 파일을 다시 읽어들이는 서비스를 제공합니다.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/zzirit-storefront/internal/config"
	"github.com/darkkaiser/zzirit-storefront/pkg/cronx"
	applog "github.com/darkkaiser/zzirit-storefront/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Scheduler 서비스의 로깅용 컴포넌트 이름
const component = "scheduler.service"

// Reloader 카탈로그를 다시 적재하는 인터페이스입니다. catalog.Store가 구현합니다.
type Reloader interface {
	Reload() error
}

// Scheduler 카탈로그 재적재 작업을 Cron 스케줄에 맞춰 실행하는 서비스입니다.
//
// 재적재가 실패하면 에러를 로깅할 뿐 기존 카탈로그는 그대로 유지됩니다.
type Scheduler struct {
	reloadConfig config.ReloadConfig

	reloader Reloader

	cron *cron.Cron

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Scheduler 서비스 인스턴스를 생성합니다.
func NewService(reloadConfig config.ReloadConfig, reloader Reloader) *Scheduler {
	if reloader == nil {
		panic("Reloader는 필수입니다")
	}

	return &Scheduler{
		reloadConfig: reloadConfig,
		reloader:     reloader,
	}
}

// Start 재적재 스케줄이 활성화되어 있으면 Cron 엔진에 등록하고 시작합니다.
// 비활성화되어 있으면 아무 작업도 하지 않고 serviceStopWG.Done()을 호출합니다.
func (s *Scheduler) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Scheduler 서비스 초기화 프로세스를 시작합니다")

	if s.reloader == nil {
		serviceStopWG.Done()
		return ErrReloaderNotInitialized
	}

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Scheduler 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	if !s.reloadConfig.Runnable {
		serviceStopWG.Done()
		applog.WithComponent(component).Info("카탈로그 재적재 스케줄이 비활성화되어 있어 Scheduler 서비스를 시작하지 않습니다")
		return nil
	}

	// - StandardParser: 초 단위 스케줄링 지원 (6개 필드: 초 분 시 일 월 요일)
	// - SkipIfStillRunning: 이전 재적재가 끝나지 않았으면 이번 실행을 건너뜀
	// - Recover: Panic 발생 시 복구하여 스케줄러가 중단되지 않음
	//
	// SkipIfStillRunning은 패닉이 발생하면 실행 토큰을 반납하지 못하므로 Recover가 안쪽에 있어야 합니다.
	c := cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	timeSpec := s.reloadConfig.TimeSpec
	if _, err := c.AddFunc(timeSpec, s.reload); err != nil {
		serviceStopWG.Done()
		return NewErrInvalidCronSpec(timeSpec, err)
	}

	s.cron = c
	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec":            timeSpec,
		"registered_schedules": len(s.cron.Entries()),
	}).Info("서비스 시작 완료: Scheduler 서비스가 정상적으로 초기화되었습니다")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.stop()
	}()

	return nil
}

// stop 실행 중인 스케줄러를 중지하고 진행 중인 재적재가 끝날 때까지 대기합니다.
func (s *Scheduler) stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Scheduler 서비스 중지 시그널을 수신했습니다")

	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Scheduler 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

func (s *Scheduler) reload() {
	started := time.Now()

	if err := s.reloader.Reload(); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("카탈로그 재적재 실패: 기존 카탈로그를 유지합니다")
		return
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"elapsed": time.Since(started).String(),
	}).Debug("카탈로그 재적재 완료")
}
