// Package version 빌드 시점에 주입된 메타데이터와 실행 환경 정보를 묶어 제공합니다.
//
// 값은 링커 플래그로 주입합니다:
//
//	go build -ldflags "-X github.com/darkkaiser/zzirit-storefront/internal/pkg/version.appVersion=v1.2.0 \
//	  -X github.com/darkkaiser/zzirit-storefront/internal/pkg/version.buildNumber=42"
//
// 주입되지 않은 항목은 debug.ReadBuildInfo의 VCS 정보로 보강합니다.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

const unknown = "unknown"

// 링커 플래그(-ldflags -X)로 주입되는 값입니다. 직접 참조하지 말고 Get()을 사용합니다.
var (
	appVersion    = ""
	gitCommitHash = ""
	buildDate     = ""
	buildNumber   = ""
)

// readBuildInfo 테스트에서 교체할 수 있도록 변수로 선언합니다.
var readBuildInfo = debug.ReadBuildInfo

var (
	once   sync.Once
	cached Info
)

// Info 애플리케이션의 빌드 정보입니다. /version 응답과 시작 로그에 사용됩니다.
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	DirtyBuild  bool   `json:"dirty_build"`
}

// Get 애플리케이션의 빌드 정보를 반환합니다. 최초 호출 시 한 번만 계산합니다.
func Get() Info {
	once.Do(func() {
		cached = enrich(Info{
			Version:     strings.TrimSpace(appVersion),
			Commit:      strings.TrimSpace(gitCommitHash),
			BuildDate:   strings.TrimSpace(buildDate),
			BuildNumber: strings.TrimSpace(buildNumber),
		})
	})
	return cached
}

// enrich 비어있는 필드를 런타임 정보와 VCS 메타데이터로 채웁니다.
func enrich(bi Info) Info {
	bi.GoVersion = runtime.Version()
	bi.OS = runtime.GOOS
	bi.Arch = runtime.GOARCH

	if val, ok := readBuildInfo(); ok && val != nil {
		for _, setting := range val.Settings {
			switch setting.Key {
			case "vcs.revision":
				if bi.Commit == "" {
					bi.Commit = setting.Value
				}
			case "vcs.time":
				if bi.BuildDate == "" {
					bi.BuildDate = setting.Value
				}
			case "vcs.modified":
				bi.DirtyBuild = bi.DirtyBuild || setting.Value == "true"
			}
		}
		if bi.Version == "" && val.Main.Version != "" && val.Main.Version != "(devel)" {
			bi.Version = val.Main.Version
		}
	}

	if bi.Version == "" {
		bi.Version = unknown
	}
	if bi.Commit == "" {
		bi.Commit = unknown
	}
	if bi.BuildDate == "" {
		bi.BuildDate = unknown
	}
	if bi.BuildNumber == "" {
		bi.BuildNumber = "0"
	}

	return bi
}

// ToMap 구조적 로깅용 맵으로 변환합니다.
func (i Info) ToMap() map[string]any {
	return map[string]any{
		"version":      i.Version,
		"commit":       i.Commit,
		"build_date":   i.BuildDate,
		"build_number": i.BuildNumber,
		"go_version":   i.GoVersion,
		"os":           i.OS,
		"arch":         i.Arch,
		"dirty_build":  i.DirtyBuild,
	}
}

// String 빌드 정보를 한 줄로 요약합니다. 예: "v1.2.0 (commit: f25b8bf, build: 42, go1.24.0 linux/amd64)"
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = unknown
	}
	if i.DirtyBuild {
		v += "+dirty"
	}

	var details []string
	if i.Commit != "" && i.Commit != unknown {
		commit := i.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		details = append(details, "commit: "+commit)
	}
	if i.BuildNumber != "" && i.BuildNumber != "0" {
		details = append(details, "build: "+i.BuildNumber)
	}
	if i.GoVersion != "" {
		details = append(details, fmt.Sprintf("%s %s/%s", i.GoVersion, i.OS, i.Arch))
	}

	if len(details) == 0 {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}
