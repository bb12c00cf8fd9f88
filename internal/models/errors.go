package models

import "errors"

var (
	ErrNoRequest       = errors.New("requested repair request does not exist")
	ErrAnalysisRunning = errors.New("an analysis is already in progress")
)
