package otel

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Scope is one span as seen by handlers, services and stores.
type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	AddEvent(name string, attributes ...map[string]any)
	SetAttribute(key string, value any)
	SetAttributes(attributes map[string]any)
}

type scopeImpl struct {
	span oteltrace.Span
}

func (s *scopeImpl) End() {
	s.span.End()
}

func (s *scopeImpl) TraceError(err error) {
	if err == nil {
		return
	}

	s.span.RecordError(err, oteltrace.WithAttributes(attribute.String("error.type", fmt.Sprintf("%T", err))))
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *scopeImpl) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

// AddEvent records a point in time on the span, such as a clock that failed to render.
func (s *scopeImpl) AddEvent(name string, attributes ...map[string]any) {
	var kvs []attribute.KeyValue

	for _, attrs := range attributes {
		kvs = append(kvs, keyValues(attrs)...)
	}

	s.span.AddEvent(name, oteltrace.WithAttributes(kvs...))
}

func (s *scopeImpl) SetAttribute(key string, value any) {
	s.span.SetAttributes(keyValue(key, value))
}

func (s *scopeImpl) SetAttributes(attributes map[string]any) {
	s.span.SetAttributes(keyValues(attributes)...)
}

// keyValues converts attributes in key order so spans read the same on every request.
func keyValues(attributes map[string]any) []attribute.KeyValue {
	kvs := make([]attribute.KeyValue, 0, len(attributes))

	for _, key := range slices.Sorted(maps.Keys(attributes)) {
		kvs = append(kvs, keyValue(key, attributes[key]))
	}

	return kvs
}

func keyValue(key string, value any) attribute.KeyValue {
	switch val := value.(type) {
	case bool:
		return attribute.Bool(key, val)
	case string:
		return attribute.String(key, val)
	case int:
		return attribute.Int(key, val)
	case int64:
		return attribute.Int64(key, val)
	case float64:
		return attribute.Float64(key, val)
	case []string:
		return attribute.StringSlice(key, val)
	case []int:
		return attribute.IntSlice(key, val)
	case time.Time:
		return attribute.String(key, val.Format(time.RFC3339))
	case *time.Location:
		return attribute.String(key, val.String())
	case time.Duration:
		return attribute.Int64(key+".ms", val.Milliseconds())
	case error:
		return attribute.String(key, val.Error())
	case fmt.Stringer:
		return attribute.String(key, val.String())
	default:
		return attribute.String(key, fmt.Sprintf("%v", val))
	}
}

func NewScope(span oteltrace.Span) Scope {
	return &scopeImpl{
		span: span,
	}
}
