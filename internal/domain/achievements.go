package domain

import "slices"

const (
	AchievementFirstComplete = "first-complete"
	AchievementAllComplete   = "all-complete"
	AchievementPerfectScore  = "perfect-score"
	AchievementSpeedRunner   = "speed-runner"
)

// SpeedRunThresholdSeconds is the total play time below which finishing the
// whole journey unlocks the speed-runner achievement.
const SpeedRunThresholdSeconds = 1800

// Achievement is a static definition; GameState only stores unlocked IDs.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

var Achievements = []Achievement{
	{
		ID:          AchievementFirstComplete,
		Name:        "Bước đầu tiên",
		Description: "Hoàn thành màn chơi đầu tiên",
		Icon:        "🌟",
	},
	{
		ID:          AchievementAllComplete,
		Name:        "Hoàn thành hành trình",
		Description: "Hoàn thành tất cả các mốc lịch sử",
		Icon:        "🏆",
	},
	{
		ID:          AchievementPerfectScore,
		Name:        "Điểm tuyệt đối",
		Description: "Đạt điểm tối đa trên mọi màn chơi",
		Icon:        "💯",
	},
	{
		ID:          AchievementSpeedRunner,
		Name:        "Tốc độ ánh sáng",
		Description: "Hoàn thành hành trình trong dưới 30 phút",
		Icon:        "⚡",
	},
}

func AchievementByID(id string) (Achievement, bool) {
	for _, achievement := range Achievements {
		if achievement.ID == id {
			return achievement, true
		}
	}
	return Achievement{}, false
}

// CheckAchievements returns the full unlocked achievement set for the given
// state. The result always contains every already-unlocked ID, so the set is
// monotonic no matter how the state got here. catalogSize and maxTotalScore
// come from the content catalog.
func CheckAchievements(state GameState, catalogSize int, maxTotalScore int) []string {
	unlocked := slices.Clone(state.Achievements)
	if unlocked == nil {
		unlocked = []string{}
	}

	unlock := func(id string) {
		if !slices.Contains(unlocked, id) {
			unlocked = append(unlocked, id)
		}
	}

	completed := len(state.CompletedMilestones)

	if completed >= 1 {
		unlock(AchievementFirstComplete)
	}
	if completed == catalogSize {
		unlock(AchievementAllComplete)
	}
	if state.TotalScore == maxTotalScore {
		unlock(AchievementPerfectScore)
	}
	if completed == catalogSize && state.TotalPlayTime < SpeedRunThresholdSeconds {
		unlock(AchievementSpeedRunner)
	}

	return unlocked
}
