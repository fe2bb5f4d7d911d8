/*
Package validation 설정 파일과 환경 변수로 들어오는 값의 형식을 검사합니다.

주요 기능:

  - CORS Origin 검증 (Scheme://Host[:Port])
  - 포트 번호, 호스트명, 네트워크 주소(host:port) 검증
  - 데이터 파일 경로 및 시간대(IANA Time Zone) 검증

모든 함수는 상태를 갖지 않으며 유효하지 않은 입력에 대해 원인을 담은 error를 반환합니다.
*/
package validation
