package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	apperrors "github.com/darkkaiser/zzirit-storefront/internal/pkg/errors"
	"github.com/darkkaiser/zzirit-storefront/internal/service/api/model/response"
	applog "github.com/darkkaiser/zzirit-storefront/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logEntry 로그 검증을 위한 구조체
type logEntry struct {
	Level      string `json:"level"`
	Message    string `json:"msg"`
	StatusCode int    `json:"status_code"`
	RemoteIP   string `json:"remote_ip"`
	RequestID  string `json:"request_id"`
}

// TestErrorHandler는 전역 HTTP 에러 핸들러의 동작을 검증합니다.
//
// 주의: pkg/log의 전역 상태를 변경하므로 t.Parallel()을 사용하지 않습니다.
func TestErrorHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	setupTestLogger(buf)
	defer restoreLogger()

	tests := []struct {
		name           string
		method         string
		err            error
		setupContext   func(c echo.Context, req *http.Request, rec *httptest.ResponseRecorder)
		expectedStatus int
		expectedJSON   string
		expectedLog    *logEntry
		expectNoLog    bool
	}{
		{
			name:           "404 Not Found_기본 메시지는 한국어로 통일",
			method:         http.MethodGet,
			err:            echo.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedJSON:   `{"result_code":404,"message":"요청한 리소스를 찾을 수 없습니다"}`,
			expectedLog:    &logEntry{Level: "warning", Message: "HTTP 4xx: 클라이언트 요청 오류", StatusCode: http.StatusNotFound},
		},
		{
			name:           "400 Bad Request_기본 메시지는 한국어로 통일",
			method:         http.MethodPost,
			err:            echo.ErrBadRequest,
			expectedStatus: http.StatusBadRequest,
			expectedJSON:   `{"result_code":400,"message":"잘못된 요청입니다"}`,
		},
		{
			name:           "409 Conflict_기본 메시지는 한국어로 통일",
			method:         http.MethodPost,
			err:            echo.ErrConflict,
			expectedStatus: http.StatusConflict,
			expectedJSON:   `{"result_code":409,"message":"요청이 현재 상태와 충돌합니다"}`,
		},
		{
			name:           "413 Request Entity Too Large_기본 메시지는 한국어로 통일",
			method:         http.MethodPost,
			err:            echo.ErrStatusRequestEntityTooLarge,
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedJSON:   `{"result_code":413,"message":"요청 본문이 너무 큽니다"}`,
		},
		{
			name:           "404 Not Found_커스텀 메시지 유지",
			method:         http.MethodGet,
			err:            echo.NewHTTPError(http.StatusNotFound, "상품을 찾을 수 없습니다"),
			expectedStatus: http.StatusNotFound,
			expectedJSON:   `{"result_code":404,"message":"상품을 찾을 수 없습니다"}`,
		},
		{
			name:           "400 Bad Request_ErrorResponse 타입 메시지",
			method:         http.MethodPost,
			err:            NewBadRequestError("잘못된 요청입니다"),
			expectedStatus: http.StatusBadRequest,
			expectedJSON:   `{"result_code":400,"message":"잘못된 요청입니다"}`,
			expectedLog:    &logEntry{Level: "warning", StatusCode: http.StatusBadRequest},
		},
		{
			name:           "AppError NotFound_404",
			method:         http.MethodGet,
			err:            apperrors.New(apperrors.NotFound, "상품을 찾을 수 없습니다 (ID: 9)"),
			expectedStatus: http.StatusNotFound,
			expectedJSON:   `{"result_code":404,"message":"상품을 찾을 수 없습니다 (ID: 9)"}`,
		},
		{
			name:           "AppError InvalidInput_400",
			method:         http.MethodPost,
			err:            apperrors.New(apperrors.InvalidInput, "수량은 1개 이상이어야 합니다"),
			expectedStatus: http.StatusBadRequest,
			expectedJSON:   `{"result_code":400,"message":"수량은 1개 이상이어야 합니다"}`,
		},
		{
			name:           "AppError Conflict_409",
			method:         http.MethodPost,
			err:            apperrors.New(apperrors.Conflict, "이미 종료된 타임딜입니다"),
			expectedStatus: http.StatusConflict,
			expectedJSON:   `{"result_code":409,"message":"이미 종료된 타임딜입니다"}`,
		},
		{
			name:           "AppError Unavailable_503 메시지 대체",
			method:         http.MethodGet,
			err:            apperrors.Wrap(errors.New("dial tcp: refused"), apperrors.Unavailable, "장바구니 저장소 연결 실패"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedJSON:   `{"result_code":503,"message":"서비스를 일시적으로 사용할 수 없습니다. 잠시 후 다시 시도해주세요"}`,
			expectedLog:    &logEntry{Level: "error", Message: "HTTP 5xx: 서버 내부 오류", StatusCode: http.StatusServiceUnavailable},
		},
		{
			name:           "AppError Internal_내부 메시지 비노출",
			method:         http.MethodGet,
			err:            apperrors.New(apperrors.Internal, "redis 필드 손상"),
			expectedStatus: http.StatusInternalServerError,
			expectedJSON:   `{"result_code":500,"message":"내부 서버 오류가 발생했습니다"}`,
		},
		{
			name:           "일반 에러_500",
			method:         http.MethodGet,
			err:            errors.New("unexpected"),
			expectedStatus: http.StatusInternalServerError,
			expectedJSON:   `{"result_code":500,"message":"내부 서버 오류가 발생했습니다"}`,
			expectedLog:    &logEntry{Level: "error", StatusCode: http.StatusInternalServerError},
		},
		{
			name:   "로깅 필드 검증_IP 및 RequestID",
			method: http.MethodGet,
			err:    echo.NewHTTPError(http.StatusBadRequest, "Bad Request"),
			setupContext: func(c echo.Context, req *http.Request, rec *httptest.ResponseRecorder) {
				req.RemoteAddr = "192.168.1.100:12345"
				rec.Header().Set(echo.HeaderXRequestID, "test-req-id-123")
			},
			expectedStatus: http.StatusBadRequest,
			expectedJSON:   `{"result_code":400,"message":"잘못된 요청입니다"}`,
			expectedLog:    &logEntry{RemoteIP: "192.168.1.100", RequestID: "test-req-id-123"},
		},
		{
			name:           "HEAD 요청_Body 없음",
			method:         http.MethodHead,
			err:            echo.ErrNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "이미 응답 커밋됨_작업 중단",
			method: http.MethodGet,
			err:    errors.New("error after write"),
			setupContext: func(c echo.Context, req *http.Request, rec *httptest.ResponseRecorder) {
				c.Response().Committed = true
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "HTTPError 메시지 타입 불일치_기본 메시지",
			method:         http.MethodGet,
			err:            echo.NewHTTPError(http.StatusBadRequest, 12345),
			expectedStatus: http.StatusBadRequest,
			expectedJSON:   `{"result_code":400,"message":"내부 서버 오류가 발생했습니다"}`,
		},
		{
			name:           "3xx 상태_로그 제외",
			method:         http.MethodGet,
			err:            echo.NewHTTPError(http.StatusFound, "Redirecting"),
			expectedStatus: http.StatusFound,
			expectedJSON:   `{"result_code":302,"message":"Redirecting"}`,
			expectNoLog:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			e := echo.New()
			req := httptest.NewRequest(tt.method, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if tt.setupContext != nil {
				tt.setupContext(c, req, rec)
			}

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedJSON != "" {
				assert.JSONEq(t, tt.expectedJSON, rec.Body.String())
			} else {
				assert.Empty(t, rec.Body.String())
			}

			if tt.expectNoLog {
				assert.Empty(t, buf.String())
				return
			}
			if tt.expectedLog != nil {
				var entry logEntry
				require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "로그 파싱 실패: %s", buf.String())

				if tt.expectedLog.Level != "" {
					assert.Equal(t, tt.expectedLog.Level, entry.Level)
				}
				if tt.expectedLog.Message != "" {
					assert.Equal(t, tt.expectedLog.Message, entry.Message)
				}
				if tt.expectedLog.StatusCode != 0 {
					assert.Equal(t, tt.expectedLog.StatusCode, entry.StatusCode)
				}
				if tt.expectedLog.RemoteIP != "" {
					assert.Equal(t, tt.expectedLog.RemoteIP, entry.RemoteIP)
				}
				if tt.expectedLog.RequestID != "" {
					assert.Equal(t, tt.expectedLog.RequestID, entry.RequestID)
				}
			}
		})
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		errType  apperrors.ErrorType
		expected int
	}{
		{apperrors.InvalidInput, http.StatusBadRequest},
		{apperrors.ParsingFailed, http.StatusBadRequest},
		{apperrors.NotFound, http.StatusNotFound},
		{apperrors.Conflict, http.StatusConflict},
		{apperrors.Unavailable, http.StatusServiceUnavailable},
		{apperrors.System, http.StatusInternalServerError},
		{apperrors.Internal, http.StatusInternalServerError},
		{apperrors.Unknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.errType.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusCode(tt.errType))
		})
	}
}

// 바깥쪽 AppError의 타입이 상태 코드를 결정합니다.
func TestErrorHandler_OutermostTypeWins(t *testing.T) {
	setupTestLogger(new(bytes.Buffer))
	defer restoreLogger()

	err := apperrors.Wrap(apperrors.New(apperrors.Internal, "내부"), apperrors.NotFound, "상품을 찾을 수 없습니다")

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	ErrorHandler(err, c)

	var resp response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "상품을 찾을 수 없습니다", resp.Message)
}

// setupTestLogger 테스트를 위해 로거 출력을 버퍼로 변경합니다.
func setupTestLogger(buf *bytes.Buffer) {
	applog.StandardLogger().SetOutput(buf)
	applog.StandardLogger().SetFormatter(&applog.JSONFormatter{})
}

// restoreLogger 로거 출력을 표준 출력으로 복구합니다.
func restoreLogger() {
	applog.StandardLogger().SetOutput(os.Stdout)
	applog.StandardLogger().SetFormatter(&applog.TextFormatter{})
}
