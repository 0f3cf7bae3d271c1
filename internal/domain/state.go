package domain

import (
	"maps"
	"slices"
	"time"
)

// DefaultSlotID is the save slot used when the player never picks a profile.
const DefaultSlotID = "00000000-0000-0000-0000-000000000001"

// CharacterProgress tracks the cosmetic character evolution. The level is a
// pure function of how many milestones are complete; UnlockedLevels keeps
// every level ever reached so the UI can show the full gallery.
type CharacterProgress struct {
	CurrentLevel   int
	UnlockedLevels []int
}

// GameState is the full persisted progress record for one save slot. It is
// only ever written as a whole; mutations produce a new state before anything
// is persisted.
type GameState struct {
	CurrentMilestoneID  MilestoneID
	CompletedMilestones []MilestoneID
	Scores              map[MilestoneID]int
	TotalScore          int
	TotalPlayTime       int // seconds, cumulative over all attempts
	Achievements        []string
	Character           CharacterProgress
	LastPlayed          time.Time
	IsFirstTime         bool
}

// NewDefaultState returns the state of a fresh save slot, with the cursor on
// the first milestone of the catalog.
func NewDefaultState(firstMilestone MilestoneID) GameState {
	return GameState{
		CurrentMilestoneID:  firstMilestone,
		CompletedMilestones: []MilestoneID{},
		Scores:              map[MilestoneID]int{},
		Achievements:        []string{},
		Character: CharacterProgress{
			CurrentLevel:   0,
			UnlockedLevels: []int{0},
		},
		IsFirstTime: true,
	}
}

// Clone returns a copy that shares no collections with the original, so the
// two can be mutated independently.
func (s GameState) Clone() GameState {
	s.CompletedMilestones = slices.Clone(s.CompletedMilestones)
	s.Scores = maps.Clone(s.Scores)
	s.Achievements = slices.Clone(s.Achievements)
	s.Character.UnlockedLevels = slices.Clone(s.Character.UnlockedLevels)
	return s
}

func (s *GameState) HasCompleted(id MilestoneID) bool {
	return slices.Contains(s.CompletedMilestones, id)
}

func (s *GameState) HasAchievement(id string) bool {
	return slices.Contains(s.Achievements, id)
}

// SumOfScores is the authoritative value for TotalScore. A persisted
// TotalScore is never trusted; it is recomputed from here on every load and
// mutation.
func (s *GameState) SumOfScores() int {
	total := 0
	for _, score := range s.Scores {
		total += score
	}
	return total
}

// Normalized repairs a state loaded from persistence: nil collections become
// empty, derived fields are recomputed, and a missing cursor falls back to the
// first catalog milestone. Unknown or legacy fields in the blob have already
// been dropped by the decoder; this fills the gaps they leave.
func (s GameState) Normalized(firstMilestone MilestoneID) GameState {
	if s.CurrentMilestoneID == "" {
		s.CurrentMilestoneID = firstMilestone
	}
	if s.CompletedMilestones == nil {
		s.CompletedMilestones = []MilestoneID{}
	}
	if s.Scores == nil {
		s.Scores = map[MilestoneID]int{}
	}
	if s.Achievements == nil {
		s.Achievements = []string{}
	}

	s.CompletedMilestones = dedupe(s.CompletedMilestones)
	s.TotalScore = s.SumOfScores()
	if s.TotalPlayTime < 0 {
		s.TotalPlayTime = 0
	}

	level := CharacterLevelFor(len(s.CompletedMilestones))
	if level > s.Character.CurrentLevel {
		s.Character.CurrentLevel = level
	}
	s.Character.UnlockedLevels = levelsUpTo(s.Character.CurrentLevel)

	return s
}

func dedupe(ids []MilestoneID) []MilestoneID {
	seen := make(map[MilestoneID]bool, len(ids))
	out := make([]MilestoneID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func levelsUpTo(level int) []int {
	levels := make([]int, 0, level+1)
	for l := 0; l <= level; l++ {
		levels = append(levels, l)
	}
	return levels
}
