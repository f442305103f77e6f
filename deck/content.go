package deck

// NanoBanana is the Nano Banana product pitch, one record per slide.
var NanoBanana = []SlideRecord{
	{
		Layout:   LayoutTitle,
		Title:    "Nano Banana\n(나노바나나)",
		Subtitle: "미래를 바꿀 초소형 과일 혁명\nSmall Change, Big Impact",
	},
	{
		Layout: LayoutContent,
		Title:  "나노바나나란 무엇인가?",
		Content: []string{
			"• 나노 기술(Nanotechnology)과 생명공학의 결합",
			"• 기존 바나나의 맛과 영양을 유지하면서 크기는 1/1000로 축소",
			"• 언제 어디서나 간편하게 섭취 가능한 미래형 식량",
			"• '작지만 확실한 행복'의 결정체",
		},
	},
	{
		Layout: LayoutContent,
		Title:  "Feature 1: Nano Size, Huge Taste",
		Content: []string{
			"• 쌀알 크기의 바나나 한 개에 일반 바나나 10개 분량의 에너지 압축",
			"• 분자 요리 기법을 응용한 텍스처 보존",
			"• 주머니 속에 1년치 식량 휴대 가능",
			"• 탄소 발자국 99% 감소 효과로 친환경적",
		},
	},
	{
		Layout: LayoutContent,
		Title:  "Feature 2: Smart Peeling Tech",
		Content: []string{
			"• 껍질을 까는 불편함 제거: 자동 분해되는 바이오 폴리머 껍질",
			"• 공기 접촉 시 3초 만에 껍질이 기화되어 사라짐",
			"• 쓰레기 발생 Zero 실현",
			"• 위생적이고 안전한 보관 가능",
		},
	},
	{
		Layout:       LayoutComparison,
		Title:        "일반 바나나 vs 나노바나나",
		ContentLeft:  "Regular Banana\n\n• 무게: 120g\n• 보관: 1주일\n• 섭취: 1분\n• 휴대성: 불편함",
		ContentRight: "Nano Banana\n\n• 무게: 0.1g\n• 보관: 10년 (상온)\n• 섭취: 0.1초\n• 휴대성: 무한대",
	},
	{
		Layout: LayoutContent,
		Title:  "활용 분야: 우주에서 사막까지",
		Content: []string{
			"• 우주비행사(Space Snacks): 부피 최소화, 영양 극대화",
			"• 재난 구호 물품: 드론으로 수백만 개 투하 가능",
			"• 스포츠 에너지원: 마라톤, 철인3종 경기 중 즉시 섭취",
			"• 다이어트: 뇌를 속여 포만감을 주는 신호 전달물질 함유",
		},
	},
	{
		Layout: LayoutContent,
		Title:  "Quantum Potassium (양자 칼륨)",
		Content: []string{
			"• 기존 칼륨보다 체내 흡수율 500% 증가",
			"• 나노 캡슐화된 비타민 B6, C, 마그네슘",
			"• 즉각적인 근육 회복 및 피로 개선 효과",
			"• 섭취 시 행복 호르몬(세로토닌) 부스터 효과",
		},
	},
	{
		Layout: LayoutContent,
		Title:  "Market Analysis",
		Content: []string{
			"• 글로벌 슈퍼푸드 시장의 새로운 패러다임 제시",
			"• 2030년 예상 시장 규모: 500억 달러",
			"• 타겟: 바쁜 현대인, 운동선수, 캠핑족, 우주 매니아",
			"• 경쟁사: 마이크로 멜론, 피코 파인애플 (개발 중)",
		},
	},
	{
		Layout: LayoutContent,
		Title:  "Future Roadmap",
		Content: []string{
			"• 2026 Q3: 시제품 출시 및 FDA 승인 신청",
			"• 2027 Q1: 글로벌 편의점 입점 (계산대 옆 캡슐 형태)",
			"• 2028: 맛 커스텀 서비스 (초코, 딸기 등 다양한 맛)",
			"• 2030: 가정용 나노바나나 재배기 보급 시작",
		},
	},
	{
		Layout:   LayoutTitle,
		Title:    "결론: 바나나의 재정의",
		Subtitle: "나노바나나는 단순한 과일이 아닙니다.\n인류의 식생활을 바꿀 거대한 혁신입니다.\n\nSmall Change, Big Impact.\n지금 나노바나나 혁명에 동참하세요!",
	},
}
