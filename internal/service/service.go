// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 인터페이스를 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 애플리케이션 시작 시 구동되고 serviceStopCtx가 취소되면 종료되는 서비스입니다.
//
// Start 호출 전에 호출자가 serviceStopWG.Add(1)을 수행하며, 서비스는 종료 처리가 끝나면
// (또는 Start가 실패하면) 반드시 serviceStopWG.Done()을 호출해야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
