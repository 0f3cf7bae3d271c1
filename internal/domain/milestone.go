package domain

// MilestoneID identifies one historical stage in the campaign. The values
// follow the years of the events, with a month suffix where a year holds two
// milestones.
type MilestoneID string

const (
	MilestonePartyFounding      MilestoneID = "1930"
	MilestoneVietMinhFront      MilestoneID = "1940"
	MilestoneUncleHoReturns     MilestoneID = "1941"
	MilestoneAugustRevolution   MilestoneID = "1945-8"
	MilestoneIndependenceDay    MilestoneID = "1945-9"
	MilestoneDienBienPhuVictory MilestoneID = "1954"
)

// GameType tags which mini-game a milestone is played as.
type GameType string

const (
	GameTypeQuiz         GameType = "quiz"
	GameTypeImageMatch   GameType = "image-match"
	GameTypeTimelineSort GameType = "timeline-sort"
	GameTypeMemory       GameType = "memory"
	GameTypeFillBlank    GameType = "fill-blank"
	GameTypeWheelFortune GameType = "wheel-fortune"
	GameTypeImageQuiz    GameType = "image-quiz"
)

// GamePayload is the content for exactly one game type. Keying the payload by
// its own type rather than optional fields on Milestone makes a milestone with
// the wrong payload for its game type unrepresentable.
type GamePayload interface {
	GameType() GameType
}

type QuizQuestion struct {
	Question      string
	Options       []string
	CorrectAnswer int
	Explanation   string
}

type QuizPayload struct {
	Questions []QuizQuestion
}

func (QuizPayload) GameType() GameType { return GameTypeQuiz }

type ImagePair struct {
	ID       string
	ImageURL string
	Text     string
}

type ImageMatchPayload struct {
	Pairs []ImagePair
}

func (ImageMatchPayload) GameType() GameType { return GameTypeImageMatch }

type TimelineEvent struct {
	ID   string
	Text string
	// CorrectOrder is the 0-based index of the event in the canonical order.
	CorrectOrder int
}

type TimelineSortPayload struct {
	Events []TimelineEvent
}

func (TimelineSortPayload) GameType() GameType { return GameTypeTimelineSort }

type MemoryCard struct {
	ID      string
	Content string
	// Cards sharing a PairID form a match.
	PairID string
}

type MemoryPayload struct {
	Cards []MemoryCard
}

func (MemoryPayload) GameType() GameType { return GameTypeMemory }

type FillBlankPayload struct {
	// Text contains [blank1], [blank2], ... markers.
	Text string
	// Blanks holds the correct word for each marker, in order.
	Blanks []string
	// WordBank is a superset of Blanks with distractors mixed in.
	WordBank []string
}

func (FillBlankPayload) GameType() GameType { return GameTypeFillBlank }

type WheelFortunePayload struct {
	Phrase   string
	Category string
	Hint     string
}

func (WheelFortunePayload) GameType() GameType { return GameTypeWheelFortune }

type ImageQuizQuestion struct {
	ImageURL      string
	Question      string
	Options       []string
	CorrectAnswer int
	Explanation   string
}

type ImageQuizPayload struct {
	Questions []ImageQuizQuestion
}

func (ImageQuizPayload) GameType() GameType { return GameTypeImageQuiz }

// Milestone is one stage of the campaign. The catalog defines these at build
// time; nothing mutates them.
type Milestone struct {
	ID    MilestoneID
	Year  int
	Month int // 0 when unset
	Day   int // 0 when unset

	Title       string
	Description string

	MaxScore      int
	RequiredScore int
	// TimeLimitSeconds is nil for untimed games.
	TimeLimitSeconds *int

	Game GamePayload

	InfoTitle string
	InfoText  string
	Icon      string
}

func (m *Milestone) GameType() GameType {
	return m.Game.GameType()
}
