package domain

import "time"

// Phase is the timing of one traced step of a build.
type Phase struct {
	Name     string
	Duration time.Duration
	Failed   bool
}
