package httputil

import (
	"net/http"

	apperrors "github.com/darkkaiser/zzirit-storefront/internal/pkg/errors"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/constants"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/model/response"
	applog "github.com/darkkaiser/zzirit-storefront/pkg/log"
	"github.com/labstack/echo/v4"
)

// defaultStatusMessages Echo가 상태 문구만 담아 반환하는 에러를 대체할 한국어 메시지입니다.
var defaultStatusMessages = map[int]string{
	http.StatusBadRequest:            constants.ErrMsgBadRequest,
	http.StatusNotFound:              constants.ErrMsgNotFound,
	http.StatusConflict:              constants.ErrMsgConflict,
	http.StatusRequestEntityTooLarge: constants.ErrMsgRequestEntityTooLarge,
	http.StatusUnsupportedMediaType:  constants.ErrMsgUnsupportedMediaType,
}

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// echo.HTTPError와 애플리케이션 에러(AppError)를 표준 ErrorResponse JSON 형식으로 변환하여 반환합니다.
// 에러 발생 시 적절한 로그 레벨(Error/Warn)로 상세 정보를 기록합니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := resolveError(err)

	// Echo 기본 상태 문구는 사용자 친화적인 한국어 메시지로 통일
	if localized, ok := defaultStatusMessages[code]; ok && message == http.StatusText(code) {
		message = localized
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		// 5xx: 서버 내부 오류 - 즉시 조치 필요
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		// 4xx: 클라이언트 요청 오류 - 정상적인 거부 응답
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이중 응답 방지: 이미 응답이 전송된 경우 추가 응답 시도하지 않음
	if c.Response().Committed {
		return
	}

	// HEAD 요청 처리: HTTP 명세에 따라 헤더만 반환하고 본문은 생략
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// resolveError 에러로부터 HTTP 상태 코드와 클라이언트에 노출할 메시지를 결정합니다.
func resolveError(err error) (int, string) {
	if he, ok := err.(*echo.HTTPError); ok {
		switch msg := he.Message.(type) {
		case string:
			return he.Code, msg
		case response.ErrorResponse:
			return he.Code, msg.Message
		default:
			return he.Code, constants.ErrMsgInternalServer
		}
	}

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		code := StatusCode(appErr.Type())
		switch {
		case code == http.StatusServiceUnavailable:
			return code, constants.ErrMsgServiceUnavailable
		case code >= http.StatusInternalServerError:
			// 내부 오류 메시지는 클라이언트에 노출하지 않습니다.
			return code, constants.ErrMsgInternalServer
		default:
			return code, appErr.Message()
		}
	}

	return http.StatusInternalServerError, constants.ErrMsgInternalServer
}

// StatusCode 애플리케이션 에러 타입에 대응하는 HTTP 상태 코드를 반환합니다.
func StatusCode(errType apperrors.ErrorType) int {
	switch errType {
	case apperrors.InvalidInput, apperrors.ParsingFailed:
		return http.StatusBadRequest
	case apperrors.NotFound:
		return http.StatusNotFound
	case apperrors.Conflict:
		return http.StatusConflict
	case apperrors.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
