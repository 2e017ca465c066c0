package controller

import "time"

// Message types.
type tickMsg time.Time

// List item types.
type recordItem struct {
	path   string
	detail string
	kind   string
}

func (r recordItem) FilterValue() string {
	return r.path + " " + r.detail + " " + r.kind
}
