package catalog

import "github.com/ltnguyen/hanhtrinh/internal/domain"

func seconds(s int) *int {
	return &s
}

// The campaign content. List order is the canonical play order.
var milestones = []domain.Milestone{
	{
		ID:            domain.MilestonePartyFounding,
		Year:          1930,
		Month:         2,
		Day:           3,
		Title:         "Thành lập Đảng",
		Description:   "Đảng Cộng sản Việt Nam được thành lập",
		MaxScore:      100,
		RequiredScore: 60,
		// 15s per question x 5
		TimeLimitSeconds: seconds(75),
		Icon:             "🏛️",
		Game: domain.QuizPayload{
			Questions: []domain.QuizQuestion{
				{
					Question:      "Đảng Cộng sản Việt Nam được thành lập tại đâu?",
					Options:       []string{"Hà Nội", "Hồng Kông", "Paris", "Quảng Châu"},
					CorrectAnswer: 1,
					Explanation:   "Ngày 3/2/1930, tại Hồng Kông, Nguyễn Ái Quốc chủ trì Hội nghị hợp nhất các tổ chức cộng sản thành Đảng Cộng sản Việt Nam.",
				},
				{
					Question:      "Ai là người sáng lập Đảng Cộng sản Việt Nam?",
					Options:       []string{"Hồ Chí Minh", "Võ Nguyên Giáp", "Phạm Văn Đồng", "Trường Chinh"},
					CorrectAnswer: 0,
					Explanation:   "Nguyễn Ái Quốc (Hồ Chí Minh) là người sáng lập và lãnh đạo Đảng Cộng sản Việt Nam.",
				},
				{
					Question:      "Đảng Cộng sản Việt Nam được thành lập vào ngày nào?",
					Options:       []string{"2/2/1930", "3/2/1930", "19/5/1890", "2/9/1945"},
					CorrectAnswer: 1,
					Explanation:   "Ngày 3 tháng 2 năm 1930 là ngày thành lập Đảng Cộng sản Việt Nam.",
				},
				{
					Question:      "Trước khi thành lập Đảng thống nhất, có bao nhiêu tổ chức cộng sản ở Việt Nam?",
					Options:       []string{"2 tổ chức", "3 tổ chức", "4 tổ chức", "5 tổ chức"},
					CorrectAnswer: 1,
					Explanation:   "Ba tổ chức là: Đông Dương Cộng sản Đảng, An Nam Cộng sản Đảng và Đông Dương Cộng sản Liên đoàn đã được hợp nhất.",
				},
				{
					Question:      "Mục tiêu chính của Đảng Cộng sản Việt Nam là gì?",
					Options:       []string{"Phát triển kinh tế", "Đánh đuổi thực dân Pháp, giành độc lập dân tộc", "Cải cách giáo dục", "Phát triển nông nghiệp"},
					CorrectAnswer: 1,
					Explanation:   "Mục tiêu chính là đánh đuổi thực dân Pháp, phong kiến, giành độc lập dân tộc và xây dựng chủ nghĩa xã hội.",
				},
			},
		},
		InfoTitle: "Ngày thành lập Đảng Cộng sản Việt Nam",
		InfoText:  "Ngày 3 tháng 2 năm 1930, tại Hồng Kông (Trung Quốc), dưới sự chủ trì của Nguyễn Ái Quốc, Hội nghị hợp nhất các tổ chức cộng sản đã ra đời. Ba tổ chức Đông Dương Cộng sản Đảng, An Nam Cộng sản Đảng và Đông Dương Cộng sản Liên đoàn đã được hợp nhất thành Đảng Cộng sản Việt Nam. Đây là mốc son chói lọi trong lịch sử dân tộc, đánh dấu bước ngoặt vĩ đại của cách mạng Việt Nam, từ tự phát chuyển sang tự giác.",
	},
	{
		ID:            domain.MilestoneVietMinhFront,
		Year:          1941,
		Month:         5,
		Day:           19,
		Title:         "Mặt trận Việt Minh",
		Description:   "Mặt trận Việt Nam Độc lập Đồng minh được thành lập",
		MaxScore:      80,
		RequiredScore: 60,
		Icon:          "🚩",
		Game: domain.ImageMatchPayload{
			Pairs: []domain.ImagePair{
				{ID: "p1", ImageURL: "👴", Text: "Hồ Chí Minh - Lãnh tụ Việt Minh"},
				{ID: "p2", ImageURL: "🏔️", Text: "Căn cứ địa Việt Bắc"},
				{ID: "p3", ImageURL: "⭐", Text: "Cờ đỏ sao vàng - Quốc kỳ"},
				{ID: "p4", ImageURL: "📰", Text: "Báo Việt Nam Độc lập"},
			},
		},
		InfoTitle: "Mặt trận Việt Minh ra đời",
		InfoText:  "Ngày 19/5/1941, Hội nghị Ban Chấp hành Trung ương Đảng lần thứ 8 họp tại Pác Bó, Cao Bằng đã quyết định thành lập Mặt trận Việt Nam Độc lập Đồng minh (Việt Minh). Đây là mặt trận dân tộc thống nhất rộng rãi nhất, đoàn kết tất cả các tầng lớp nhân dân, các dân tộc, tôn giáo để đấu tranh giành độc lập dân tộc. Việt Minh đã trở thành lực lượng chính trị - quân sự hùng mạnh, lãnh đạo nhân dân ta giành thắng lợi trong Cách mạng Tháng Tám 1945.",
	},
	{
		ID:            domain.MilestoneUncleHoReturns,
		Year:          1941,
		Month:         1,
		Day:           28,
		Title:         "Bác Hồ về nước",
		Description:   "Nguyễn Ái Quốc về nước sau 30 năm hoạt động ở nước ngoài",
		MaxScore:      100,
		RequiredScore: 80,
		Icon:          "🇻🇳",
		Game: domain.TimelineSortPayload{
			Events: []domain.TimelineEvent{
				{ID: "e1", Text: "Bác Hồ trở về Tổ quốc sau 30 năm hoạt động cách mạng ở nước ngoài", CorrectOrder: 0},
				{ID: "e2", Text: "Hội nghị lần thứ 8 BCH TW Đảng họp tại Pác Bó", CorrectOrder: 1},
				{ID: "e3", Text: "Thành lập Mặt trận Việt Minh", CorrectOrder: 2},
				{ID: "e4", Text: "Ra tờ báo \"Việt Nam Độc lập\" - cơ quan ngôn luận của Việt Minh", CorrectOrder: 3},
				{ID: "e5", Text: "Thành lập Đội Việt Nam Tuyên truyền Giải phóng quân (tiền thân Quân đội nhân dân VN)", CorrectOrder: 4},
			},
		},
		InfoTitle: "Bác Hồ về nước lãnh đạo cách mạng",
		InfoText:  "Sau 30 năm hoạt động cách mạng ở nước ngoài, ngày 28/1/1941, Nguyễn Ái Quốc trở về Tổ quốc, đặt chân lên mảnh đất Pác Bó, Cao Bằng. Từ đây, Người trực tiếp lãnh đạo cách mạng Việt Nam. Dưới sự lãnh đạo sáng suốt của Người, Đảng ta đã vạch ra đường lối đúng đắn, đưa cách mạng Việt Nam đi từ thắng lợi này đến thắng lợi khác, cuối cùng giành được độc lập dân tộc vào năm 1945.",
	},
	{
		ID:            domain.MilestoneAugustRevolution,
		Year:          1945,
		Month:         8,
		Day:           19,
		Title:         "Tổng khởi nghĩa",
		Description:   "Cách mạng Tháng Tám thành công",
		MaxScore:      120,
		RequiredScore: 80,
		Icon:          "⚔️",
		Game: domain.MemoryPayload{
			Cards: []domain.MemoryCard{
				{ID: "c1", Content: "Hà Nội", PairID: "pair1"},
				{ID: "c2", Content: "19/8", PairID: "pair1"},
				{ID: "c3", Content: "Sài Gòn", PairID: "pair2"},
				{ID: "c4", Content: "25/8", PairID: "pair2"},
				{ID: "c5", Content: "Huế", PairID: "pair3"},
				{ID: "c6", Content: "23/8", PairID: "pair3"},
				{ID: "c7", Content: "Quảng Trị", PairID: "pair4"},
				{ID: "c8", Content: "16/8", PairID: "pair4"},
				{ID: "c9", Content: "Võ Nguyên Giáp", PairID: "pair5"},
				{ID: "c10", Content: "Tổng Tư lệnh", PairID: "pair5"},
				{ID: "c11", Content: "Trần Huy Liệu", PairID: "pair6"},
				{ID: "c12", Content: "Ủy ban nhân dân HN", PairID: "pair6"},
			},
		},
		InfoTitle: "Cách mạng Tháng Tám 1945 thành công",
		InfoText:  "Từ ngày 13 đến 15/8/1945, Hội nghị toàn quốc của Đảng họp tại Tân Trào quyết định phát động tổng khởi nghĩa giành chính quyền. Chỉ trong vòng 15 ngày, từ 14 đến 28/8/1945, nhân dân ta đã giành chính quyền về tay nhân dân trên phạm vi cả nước. Ngày 19/8, Hà Nội được giải phóng. Ngày 23/8, cách mạng thắng lợi ở Huế. Ngày 25/8, Sài Gòn được giải phóng. Vua Bảo Đại thoái vị ngày 30/8. Đây là thắng lợi vĩ đại đầu tiên của cách mạng Việt Nam do Đảng và Bác Hồ lãnh đạo.",
	},
	{
		ID:            domain.MilestoneIndependenceDay,
		Year:          1945,
		Month:         9,
		Day:           2,
		Title:         "Tuyên ngôn Độc lập",
		Description:   "Chủ tịch Hồ Chí Minh đọc Tuyên ngôn Độc lập",
		MaxScore:      150,
		RequiredScore: 100,
		Icon:          "📜",
		Game: domain.FillBlankPayload{
			Text:     "Nước Việt Nam có quyền hưởng [blank1] và [blank2]. Toàn thể dân tộc Việt Nam quyết đem tất cả tinh thần và lực lượng, tính mạng và của cải để giữ vững quyền [blank1] và [blank2] ấy.",
			Blanks:   []string{"tự do", "độc lập"},
			WordBank: []string{"tự do", "độc lập", "hòa bình", "thịnh vượng", "bình đẳng", "toàn vẹn", "dân chủ", "giàu mạnh"},
		},
		InfoTitle: "Ngày Quốc khánh 2/9/1945",
		InfoText:  "Ngày 2/9/1945, tại Quảng trường Ba Đình, Hà Nội, trước hàng vạn đồng bào từ mọi miền đất nước đổ về, Chủ tịch Hồ Chí Minh đã long trọng đọc Tuyên ngôn Độc lập, khai sinh ra nước Việt Nam Dân chủ Cộng hòa - Nhà nước công nông đầu tiên ở Đông Nam Á. Tuyên ngôn khẳng định: \"Nước Việt Nam có quyền hưởng tự do và độc lập, và sự thật đã thành một nước tự do và độc lập\". Đây là ngày lễ trọng đại nhất của dân tộc Việt Nam, đánh dấu chủ quyền, độc lập và toàn vẹn lãnh thổ của đất nước.",
	},
	{
		ID:            domain.MilestoneDienBienPhuVictory,
		Year:          1954,
		Month:         5,
		Day:           7,
		Title:         "Chiến thắng Điện Biên Phủ",
		Description:   "Chiến dịch Điện Biên Phủ toàn thắng",
		MaxScore:      100,
		RequiredScore: 70,
		Icon:          "🏔️",
		Game: domain.WheelFortunePayload{
			Phrase:   "CHIẾN THẮNG ĐIỆN BIÊN PHỦ",
			Category: "Sự kiện lịch sử",
			Hint:     "Thắng lợi \"lừng lẫy năm châu, chấn động địa cầu\" năm 1954",
		},
		InfoTitle: "Chiến thắng lịch sử Điện Biên Phủ",
		InfoText:  "Ngày 7/5/1954, sau 56 ngày đêm chiến đấu anh dũng, quân và dân ta đã tiêu diệt hoàn toàn tập đoàn cứ điểm Điện Biên Phủ. Chiến thắng Điện Biên Phủ \"lừng lẫy năm châu, chấn động địa cầu\" đã đập tan kế hoạch quân sự của thực dân Pháp, buộc Pháp phải ký Hiệp định Genève, chấm dứt chiến tranh, lập lại hòa bình ở Đông Dương. Đây là thắng lợi vĩ đại của dân tộc Việt Nam và là nguồn cổ vũ to lớn cho phong trào giải phóng dân tộc trên toàn thế giới.",
	},
}
