package domain

import "errors"

var (
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrMilestoneLocked   = errors.New("milestone not unlocked")
	ErrSaveNotFound      = errors.New("save not found")
	ErrGameOver          = errors.New("game already finished")
	ErrGameInProgress    = errors.New("game not finished")
)
