package view

import "errors"

var (
	ErrCardNotFound = errors.New("card not found")
	ErrNotDraft     = errors.New("card is not a draft")
	ErrNotSaved     = errors.New("card is not saved")
)
