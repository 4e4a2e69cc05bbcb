package model

import (
	"clockwise/shared/failure"
	gModel "clockwise/shared/model"
	"slices"
	"strings"
)

const (
	EntityName = "session"

	MaxClocks    = 6
	MaxNotices   = 10
	DefaultLabel = "Pakistan/Islamabad"
	NoSelection  = "Select a timezone..."
)

var (
	ErrSessionFull     = failure.Conflict("Maximum 6 clocks reached. Remove a clock to add a new one.")
	ErrNoSelection     = failure.BadRequestFromString("Please select a timezone first!")
	ErrAlreadySelected = failure.Conflict("Timezone is already on the board.")
	ErrIndexOutOfRange = failure.NotFound("Clock index out of range.")
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is a one-shot message shown on the next render.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Session is the ordered list of clocks chosen in one browser session.
type Session struct {
	ID      string   `json:"id"`
	Labels  []string `json:"labels"`
	Notices []Notice `json:"notices,omitempty"`
	gModel.Metadata
}

// New returns a session holding only the default clock.
func New(id string) *Session {
	return &Session{
		ID:     id,
		Labels: []string{DefaultLabel},
	}
}

// IsSelection reports whether label is an actual choice rather than the picker placeholder.
func IsSelection(label string) bool {
	label = strings.TrimSpace(label)

	return label != "" && label != NoSelection
}

func (s *Session) CanAdd() bool {
	return len(s.Labels) < MaxClocks
}

// List returns a copy of the selected labels in display order.
func (s *Session) List() []string {
	return slices.Clone(s.Labels)
}

func (s *Session) Len() int {
	return len(s.Labels)
}

// Add appends label. The session is left untouched on error.
func (s *Session) Add(label string) error {
	if !s.CanAdd() {
		return ErrSessionFull
	}

	if !IsSelection(label) {
		return ErrNoSelection
	}

	if slices.Contains(s.Labels, label) {
		return ErrAlreadySelected
	}

	s.Labels = append(s.Labels, label)

	return nil
}

// Remove drops the label at index and returns it.
func (s *Session) Remove(index int) (string, error) {
	if index < 0 || index >= len(s.Labels) {
		return "", ErrIndexOutOfRange
	}

	label := s.Labels[index]
	s.Labels = slices.Delete(s.Labels, index, index+1)

	return label, nil
}

// Push queues a notice, dropping the oldest beyond MaxNotices.
func (s *Session) Push(notice Notice) {
	s.Notices = append(s.Notices, notice)

	if over := len(s.Notices) - MaxNotices; over > 0 {
		s.Notices = slices.Delete(s.Notices, 0, over)
	}
}

// TakeNotices returns the queued notices and clears them.
func (s *Session) TakeNotices() []Notice {
	notices := s.Notices
	s.Notices = nil

	return notices
}
