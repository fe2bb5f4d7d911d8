// Package maputil 맵(Map) 형태의 느슨한 데이터를 구조체로 변환하는 기능을 제공합니다.
package maputil

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode input을 T 구조체로 변환하여 반환합니다.
//
// 기본 동작:
//   - json 태그를 기준으로 필드를 매핑합니다.
//   - 타입이 달라도 변환 가능하면 보정합니다. ("123" -> 123, 1 -> true)
//   - 구조체에 없는 키는 무시합니다. 엄격한 검증이 필요하면 WithErrorUnused(true)를 사용합니다.
//
// 사용 예시:
//
//	item, err := maputil.Decode[rawItem](record.Value())
func Decode[T any](input any, opts ...Option) (*T, error) {
	output := new(T)
	if err := DecodeTo(input, output, opts...); err != nil {
		return nil, err
	}
	return output, nil
}

// DecodeTo input을 output이 가리키는 구조체에 병합합니다.
// output에 미리 채워진 값은 input에 같은 키가 없으면 유지됩니다.
func DecodeTo[T any](input any, output *T, opts ...Option) error {
	if output == nil {
		return errors.New("디코딩 결과를 저장할 output 포인터가 nil입니다")
	}

	cfg := &decodingConfig{
		weaklyTypedInput: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		TagName:          "json",
		WeaklyTypedInput: cfg.weaklyTypedInput,
		ErrorUnused:      cfg.errorUnused,
		Squash:           true,
		DecodeHook:       cfg.buildDecodeHook(),
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("입력 데이터를 %T(으)로 디코딩하는 데 실패했습니다: %w", output, err)
	}

	return nil
}

type decodingConfig struct {
	weaklyTypedInput bool
	errorUnused      bool
}

func (c *decodingConfig) buildDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		stringToDurationHookFunc(),
		stringToSliceHookFunc(),
	)
}

// Option 디코딩 동작을 조정하는 함수형 옵션입니다.
type Option func(*decodingConfig)

// WithWeaklyTypedInput 느슨한 타입 변환 허용 여부를 설정합니다. (기본값: true)
func WithWeaklyTypedInput(enable bool) Option {
	return func(c *decodingConfig) {
		c.weaklyTypedInput = enable
	}
}

// WithErrorUnused 구조체에 없는 키가 입력에 있으면 에러를 반환하도록 설정합니다. (기본값: false)
func WithErrorUnused(enable bool) Option {
	return func(c *decodingConfig) {
		c.errorUnused = enable
	}
}
