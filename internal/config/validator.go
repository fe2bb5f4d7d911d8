package config

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/zzirit-storefront/internal/pkg/errors"
	"github.com/darkkaiser/zzirit-storefront/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// newValidator JSON 태그 이름으로 에러를 보고하고 커스텀 규칙이 등록된 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "cors_origin", func(fl validator.FieldLevel) bool {
		return validation.ValidateCORSOrigin(fl.Field().String()) == nil
	})
	mustRegister(v, "time_zone", func(fl validator.FieldLevel) bool {
		return validation.ValidateTimeZone(fl.Field().String()) == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
	}
}

// checkStruct 구조체의 유효성을 검사하고 첫 번째 위반 항목을 사용자 친화적인 메시지로 반환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	fieldErr := validationErrors[0]
	switch fieldErr.Tag() {
	case "required":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s 값은 필수입니다", contextName, fieldErr.Field()))
	case "file":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s 파일을 찾을 수 없습니다: '%v'", contextName, fieldErr.Field(), fieldErr.Value()))
	case "time_zone":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s는 IANA 시간대 이름이어야 합니다: '%v'", contextName, fieldErr.Field(), fieldErr.Value()))
	case "startswith":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s는 '/'로 시작하는 경로여야 합니다: '%v'", contextName, fieldErr.Field(), fieldErr.Value()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, fieldErr.Field(), fieldErr.Tag()))
}
