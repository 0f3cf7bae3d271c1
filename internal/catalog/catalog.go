// Package catalog holds the static milestone content and its canonical order.
// The order of the milestone list is the single source of sequencing for the
// whole campaign; years and dates on the milestones are display data only.
package catalog

import (
	"fmt"
	"slices"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
)

type Catalog struct {
	milestones []domain.Milestone
	byID       map[domain.MilestoneID]int
}

// New validates the milestone list and builds a catalog over it. IDs must be
// unique and every milestone must carry a payload.
func New(milestones []domain.Milestone) (*Catalog, error) {
	if len(milestones) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one milestone")
	}

	byID := make(map[domain.MilestoneID]int, len(milestones))
	for i, milestone := range milestones {
		if milestone.ID == "" {
			return nil, fmt.Errorf("milestone at index %d has no id", i)
		}
		if _, exists := byID[milestone.ID]; exists {
			return nil, fmt.Errorf("duplicate milestone id: %s", milestone.ID)
		}
		if milestone.Game == nil {
			return nil, fmt.Errorf("milestone %s has no game payload", milestone.ID)
		}
		if milestone.MaxScore <= 0 {
			return nil, fmt.Errorf("milestone %s has non-positive max score", milestone.ID)
		}
		byID[milestone.ID] = i
	}

	return &Catalog{milestones: milestones, byID: byID}, nil
}

var defaultCatalog = func() *Catalog {
	c, err := New(milestones)
	if err != nil {
		panic(fmt.Errorf("invalid built-in milestone content: %w", err))
	}
	return c
}()

// Default returns the catalog built from the repository's milestone content.
func Default() *Catalog {
	return defaultCatalog
}

func (c *Catalog) Size() int {
	return len(c.milestones)
}

func (c *Catalog) All() []domain.Milestone {
	return slices.Clone(c.milestones)
}

func (c *Catalog) GetByID(id domain.MilestoneID) (domain.Milestone, error) {
	index, ok := c.byID[id]
	if !ok {
		return domain.Milestone{}, fmt.Errorf("%w: %s", domain.ErrMilestoneNotFound, id)
	}
	return c.milestones[index], nil
}

func (c *Catalog) FirstID() domain.MilestoneID {
	return c.milestones[0].ID
}

// IndexOf returns the position of the milestone in catalog order, or -1 for
// an unknown id.
func (c *Catalog) IndexOf(id domain.MilestoneID) int {
	index, ok := c.byID[id]
	if !ok {
		return -1
	}
	return index
}

// NextAfter returns the catalog-order successor. ok is false when id is the
// last milestone or unknown.
func (c *Catalog) NextAfter(id domain.MilestoneID) (domain.MilestoneID, bool) {
	index, exists := c.byID[id]
	if !exists || index == len(c.milestones)-1 {
		return "", false
	}
	return c.milestones[index+1].ID, true
}

// IsUnlocked implements the linear unlock chain: the first milestone is always
// playable, every later one requires its immediate predecessor to be complete.
// Score plays no part in unlocking.
func (c *Catalog) IsUnlocked(id domain.MilestoneID, completed []domain.MilestoneID) bool {
	index, exists := c.byID[id]
	if !exists {
		return false
	}
	if index == 0 {
		return true
	}
	return slices.Contains(completed, c.milestones[index-1].ID)
}

// TotalMaxScore is the sum of every milestone's max score, i.e. the threshold
// for the perfect-score achievement.
func (c *Catalog) TotalMaxScore() int {
	total := 0
	for _, milestone := range c.milestones {
		total += milestone.MaxScore
	}
	return total
}
