package mocks

import "clockwise/infras/otel"

// noopScope satisfies otel.Scope for tests that do not inspect spans.
type noopScope struct{}

var _ otel.Scope = noopScope{}

func (noopScope) End()                                   {}
func (noopScope) TraceError(_ error)                     {}
func (noopScope) TraceIfError(_ error)                   {}
func (noopScope) AddEvent(_ string, _ ...map[string]any) {}
func (noopScope) SetAttribute(_ string, _ any)           {}
func (noopScope) SetAttributes(_ map[string]any)         {}

func NewScope() otel.Scope {
	return noopScope{}
}
