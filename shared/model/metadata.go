package model

import "time"

type Metadata struct {
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Touch records a modification, setting CreatedAt the first time.
func (m *Metadata) Touch(now time.Time) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}

	m.ModifiedAt = now
}
