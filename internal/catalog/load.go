package catalog

import (
	"os"
	"time"

	apperrors "github.com/darkkaiser/zzirit-storefront/internal/pkg/errors"
	applog "github.com/darkkaiser/zzirit-storefront/pkg/log"
	"github.com/tidwall/gjson"
)

const component = "catalog"

// contentPath 두 목 데이터 파일 모두 레코드 배열을 이 경로에 담고 있습니다.
const contentPath = "result.content"

// Load 상품 파일과 타임딜 파일을 읽어 Catalog를 생성합니다.
// 시간대 정보가 없는 종료 시각은 loc 기준으로 해석합니다.
func Load(itemsFile, timeDealsFile string, loc *time.Location) (*Catalog, error) {
	itemsJSON, err := os.ReadFile(itemsFile)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.System, "상품 데이터 파일을 읽을 수 없습니다: '%s'", itemsFile)
	}

	timeDealsJSON, err := os.ReadFile(timeDealsFile)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.System, "타임딜 데이터 파일을 읽을 수 없습니다: '%s'", timeDealsFile)
	}

	return Parse(itemsJSON, timeDealsJSON, loc)
}

// Parse 두 JSON 문서에서 result.content 배열을 읽어 Catalog를 생성합니다.
//
// 문서 자체가 올바른 JSON이 아니거나 result.content가 배열이 아니면 에러를 반환합니다.
// 배열 안의 개별 레코드가 객체가 아니면 경고를 남기고 건너뜁니다.
func Parse(itemsJSON, timeDealsJSON []byte, loc *time.Location) (*Catalog, error) {
	if loc == nil {
		loc = time.Local
	}

	itemRecords, err := contentOf(itemsJSON, "상품")
	if err != nil {
		return nil, err
	}
	dealRecords, err := contentOf(timeDealsJSON, "타임딜")
	if err != nil {
		return nil, err
	}

	var items []Item
	for i, record := range itemRecords.Array() {
		item, ok := decodeItem(record, loc)
		if !ok {
			applog.WithComponentAndFields(component, applog.Fields{
				"index": i,
				"raw":   record.Raw,
			}).Warn("상품 레코드를 해석할 수 없어 건너뜁니다")
			continue
		}
		items = append(items, item)
	}

	var deals []TimeDeal
	for i, record := range dealRecords.Array() {
		deal, ok := decodeTimeDeal(record, loc)
		if !ok {
			applog.WithComponentAndFields(component, applog.Fields{
				"index": i,
				"raw":   record.Raw,
			}).Warn("타임딜 레코드를 해석할 수 없어 건너뜁니다")
			continue
		}
		deals = append(deals, deal)
	}

	return New(items, deals), nil
}

func contentOf(data []byte, kind string) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, apperrors.Newf(apperrors.ParsingFailed, "%s 데이터가 올바른 JSON 형식이 아닙니다", kind)
	}

	content := gjson.GetBytes(data, contentPath)
	if !content.IsArray() {
		return gjson.Result{}, apperrors.Newf(apperrors.ParsingFailed, "%s 데이터에 %s 배열이 없습니다", kind, contentPath)
	}

	return content, nil
}
