// Package response v1 API의 응답 모델을 정의합니다.
package response

import "github.com/darkkaiser/zzirit-storefront/internal/storefront"

// ItemDetailResponse 상품 상세 조회 응답
type ItemDetailResponse struct {
	// 처리 결과 코드 (0: 성공)
	ResultCode int `json:"result_code" example:"0"`

	// 상품 상세 화면 모델
	Item storefront.ItemDetail `json:"item"`
}

// CountdownResponse 타임딜 남은 시간 조회 응답
type CountdownResponse struct {
	// 처리 결과 코드 (0: 성공)
	ResultCode int `json:"result_code" example:"0"`

	// 남은 시간 스냅샷
	Countdown storefront.Countdown `json:"countdown"`
}

// DialogResponse 장바구니 담기 결과 응답
//
// 담기 실패도 200으로 응답하며, 실패 여부와 안내 문구는 Dialog에 담깁니다.
type DialogResponse struct {
	// 처리 결과 코드 (0: 성공)
	ResultCode int `json:"result_code" example:"0"`

	// 결과 대화상자 표시 정보
	Dialog storefront.Dialog `json:"dialog"`
}
