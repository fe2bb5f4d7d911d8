package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ValidateFile path가 읽을 수 있는 일반 파일인지 검사합니다.
func ValidateFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("파일 경로가 비어 있습니다")
	}

	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("파일이 존재하지 않습니다 (path=%q)", path)
		}
		return fmt.Errorf("파일 정보를 확인하는 중 오류가 발생했습니다 (path=%q): %w", path, err)
	}

	// 디렉터리, 소켓, 파이프, 디바이스 파일은 제외합니다.
	if !info.Mode().IsRegular() {
		return fmt.Errorf("해당 경로는 일반 파일이어야 합니다 (path=%q, mode=%s)", path, info.Mode())
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("파일을 읽을 수 있는 권한이 없습니다 (path=%q): %w", path, err)
	}
	_ = f.Close()

	return nil
}

// ValidateTimeZone name이 IANA Time Zone 데이터베이스에 존재하는 시간대인지 검사합니다.
func ValidateTimeZone(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("시간대가 비어 있습니다")
	}
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("알 수 없는 시간대입니다 (time_zone=%q): %w", name, err)
	}
	return nil
}
