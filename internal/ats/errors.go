package ats

import "errors"

// Input validation errors. Scoring is not attempted when any of these apply.
var (
	ErrEmptyJobDescription   = errors.New("job description is empty")
	ErrJobDescriptionTooLong = errors.New("job description exceeds word limit")
	ErrEmptyResume           = errors.New("resume text is empty")
)

// Configuration errors. Rejected before any scoring work.
var (
	ErrInvalidWeights   = errors.New("component weights must sum to 1.0")
	ErrInvalidThreshold = errors.New("similarity threshold must be within [0, 1]")
)
