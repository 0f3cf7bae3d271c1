package domain

// MaxCharacterLevel is the terminal character evolution stage.
const MaxCharacterLevel = 6

// CharacterStage is the static definition of one evolution stage.
type CharacterStage struct {
	Level       int
	Title       string
	Description string
	Icon        string
	ImageURL    string
	Color       string
}

var CharacterStages = []CharacterStage{
	{
		Level:       0,
		Title:       "Khởi Đầu Hành Trình",
		Description: "Bắt đầu hành trình khám phá lịch sử cách mạng Việt Nam",
		Icon:        "🌱",
		ImageURL:    "/characters/level-0.png",
		Color:       "#9CA3AF",
	},
	{
		Level:       1,
		Title:       "Người Khởi Đầu",
		Description: "Thanh niên yêu nước, chứng kiến sự ra đời của Đảng (1930)",
		Icon:        "🏛️",
		ImageURL:    "/characters/level-1.png",
		Color:       "#EF4444",
	},
	{
		Level:       2,
		Title:       "Chiến Sĩ Việt Minh",
		Description: "Gia nhập Mặt trận Việt Minh, sẵn sàng chiến đấu (1940-1941)",
		Icon:        "🚩",
		ImageURL:    "/characters/level-2.png",
		Color:       "#F59E0B",
	},
	{
		Level:       3,
		Title:       "Chiến Sĩ Tổng Khởi Nghĩa",
		Description: "Tham gia Cách mạng Tháng Tám, giành chính quyền (1945)",
		Icon:        "⚔️",
		ImageURL:    "/characters/level-3.png",
		Color:       "#10B981",
	},
	{
		Level:       4,
		Title:       "Công Dân Nước Độc Lập",
		Description: "Chứng kiến Tuyên ngôn Độc lập, Việt Nam tự do (2/9/1945)",
		Icon:        "🇻🇳",
		ImageURL:    "/characters/level-4.png",
		Color:       "#3B82F6",
	},
	{
		Level:       5,
		Title:       "Chiến Sĩ Điện Biên",
		Description: "Tham gia chiến thắng lịch sử Điện Biên Phủ (1954)",
		Icon:        "🏔️",
		ImageURL:    "/characters/level-5.png",
		Color:       "#F97316",
	},
	{
		Level:       6,
		Title:       "Anh Hùng Dân Tộc",
		Description: "Hoàn thành hành trình lịch sử, trở thành anh hùng",
		Icon:        "🏆",
		ImageURL:    "/characters/level-6.png",
		Color:       "#8B5CF6",
	},
}

// CharacterLevelFor maps completed milestone count to a character level, one
// level per completed milestone, clamped at the terminal stage.
func CharacterLevelFor(completedCount int) int {
	if completedCount < 0 {
		return 0
	}
	return min(completedCount, MaxCharacterLevel)
}

func StageForLevel(level int) (CharacterStage, bool) {
	if level < 0 || level >= len(CharacterStages) {
		return CharacterStage{}, false
	}
	return CharacterStages[level], true
}
