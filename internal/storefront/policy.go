package storefront

// PolicySection 상세 페이지 하단에 표시되는 안내 문구 묶음입니다.
type PolicySection struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// Policies 배송, 교환/반품, 환불 안내 문구입니다. 모든 상품에 동일하게 표시됩니다.
func Policies() []PolicySection {
	return []PolicySection{
		{
			Title: "배송정보",
			Lines: []string{
				"평균 2~3일 이내 출고 (주말/공휴일 제외)",
				"도서산간/제주 지역은 추가 배송비가 발생할 수 있습니다.",
			},
		},
		{
			Title: "교환 및 반품 안내",
			Lines: []string{
				"상품 수령 후 7일 이내 교환/반품 신청 가능",
				"단순 변심 시 왕복 배송비가 부과될 수 있습니다.",
				"상품 및 포장 상태가 훼손된 경우 교환/반품이 제한될 수 있습니다.",
			},
		},
		{
			Title: "환불 안내",
			Lines: []string{
				"환불은 반품 상품 회수 및 상태 확인 후 2~3영업일 이내 처리됩니다.",
				"결제 수단에 따라 환불 소요 기간이 다를 수 있습니다.",
			},
		},
	}
}
