package middleware

import (
	"bytes"
	"os"
	"testing"

	applog "github.com/darkkaiser/zzirit-storefront/pkg/log"
)

// setupTestLogger 로거 출력을 버퍼로 바꾸고 복구 함수를 반환합니다.
// pkg/log의 전역 상태를 변경하므로 이를 사용하는 테스트는 t.Parallel()을 사용하지 않습니다.
func setupTestLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := new(bytes.Buffer)
	logger := applog.StandardLogger()
	prevLevel := logger.Level

	logger.SetOutput(buf)
	logger.SetFormatter(&applog.JSONFormatter{})
	logger.SetLevel(applog.DebugLevel)

	t.Cleanup(func() {
		logger.SetOutput(os.Stdout)
		logger.SetFormatter(&applog.TextFormatter{})
		logger.SetLevel(prevLevel)
	})

	return buf
}
