package model_test

import (
	"clockwise/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_Touch(t *testing.T) {
	first := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	var m model.Metadata

	m.Touch(first)
	assert.Equal(t, first, m.CreatedAt)
	assert.Equal(t, first, m.ModifiedAt)

	m.Touch(second)
	assert.Equal(t, first, m.CreatedAt)
	assert.Equal(t, second, m.ModifiedAt)
}
