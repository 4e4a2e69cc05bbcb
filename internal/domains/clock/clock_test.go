package clock_test

import (
	"clockwise/infras/otel/mocks"
	"clockwise/internal/domains/catalog"
	"clockwise/internal/domains/clock"
	"clockwise/internal/domains/session/model"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixed = time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

func newRenderer(t *testing.T, c catalog.Catalog) clock.Renderer {
	t.Helper()

	return clock.NewWithClock(c, mocks.NewOtel(), func() time.Time { return fixed })
}

func TestRender(t *testing.T) {
	r := newRenderer(t, catalog.NewDefault())

	board := r.Render(context.Background(), []string{"Pakistan/Islamabad", "United States/New York", "Nepal/Kathmandu"})

	want := []clock.View{
		{Label: "Pakistan/Islamabad", Zone: "Asia/Karachi", Time: "07:07:09 PM", Date: "Tuesday, March 05, 2024", Offset: "UTC+05:00"},
		{Label: "United States/New York", Zone: "America/New_York", Time: "09:07:09 AM", Date: "Tuesday, March 05, 2024", Offset: "UTC-05:00"},
		{Label: "Nepal/Kathmandu", Zone: "Asia/Kathmandu", Time: "07:52:09 PM", Date: "Tuesday, March 05, 2024", Offset: "UTC+05:45"},
	}

	if diff := cmp.Diff(want, board.Clocks); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 3, board.Columns)
	assert.Len(t, board.Rows, 1)
	assert.Empty(t, board.Notices)
	assert.Equal(t, fixed, board.RenderedAt)
}

func TestRenderCrossesDateLine(t *testing.T) {
	r := newRenderer(t, catalog.NewDefault())

	board := r.Render(context.Background(), []string{"Fiji/Suva", "Chile/Santiago"})

	require.Len(t, board.Clocks, 2)
	assert.Equal(t, "Wednesday, March 06, 2024", board.Clocks[0].Date)
	assert.Equal(t, "02:07:09 AM", board.Clocks[0].Time)
	assert.Equal(t, "Tuesday, March 05, 2024", board.Clocks[1].Date)
}

func TestRenderIsolatesFailures(t *testing.T) {
	c, err := catalog.New([]catalog.Entry{
		{Label: "Japan/Tokyo", Zone: "Asia/Tokyo"},
		{Label: "Broken/Zone", Zone: "Not/AZone"},
		{Label: "Egypt/Cairo", Zone: "Africa/Cairo"},
	})
	require.NoError(t, err)

	r := newRenderer(t, c)

	board := r.Render(context.Background(), []string{"Japan/Tokyo", "Broken/Zone", "Missing/Label", "Egypt/Cairo"})

	require.Len(t, board.Clocks, 4)

	assert.Equal(t, "11:07:09 PM", board.Clocks[0].Time)
	assert.False(t, board.Clocks[0].Failed())

	for _, i := range []int{1, 2} {
		assert.Equal(t, clock.Failed, board.Clocks[i].Time)
		assert.Equal(t, clock.Failed, board.Clocks[i].Date)
		assert.True(t, board.Clocks[i].Failed())
	}

	assert.Equal(t, "04:07:09 PM", board.Clocks[3].Time)

	require.Len(t, board.Notices, 2)
	assert.Equal(t, model.LevelError, board.Notices[0].Level)
	assert.Contains(t, board.Notices[0].Message, "Error getting time for Broken/Zone: ")
	assert.Contains(t, board.Notices[1].Message, "Error getting time for Missing/Label: ")
}

func TestRenderLayout(t *testing.T) {
	labels := catalog.NewDefault().Labels()

	tests := []struct {
		count       int
		wantColumns int
		wantRows    []int
	}{
		{count: 0, wantColumns: 0, wantRows: nil},
		{count: 1, wantColumns: 1, wantRows: []int{1}},
		{count: 2, wantColumns: 2, wantRows: []int{2}},
		{count: 3, wantColumns: 3, wantRows: []int{3}},
		{count: 4, wantColumns: 3, wantRows: []int{3, 1}},
		{count: 6, wantColumns: 3, wantRows: []int{3, 3}},
	}

	r := newRenderer(t, catalog.NewDefault())

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d clocks", tt.count), func(t *testing.T) {
			board := r.Render(context.Background(), labels[:tt.count])

			assert.Equal(t, tt.wantColumns, board.Columns)
			assert.Equal(t, tt.count == 0, board.Empty())

			var rows []int
			for _, row := range board.Rows {
				rows = append(rows, len(row))
			}

			assert.Equal(t, tt.wantRows, rows)
		})
	}
}

func TestLayout(t *testing.T) {
	views := make([]clock.View, 5)

	assert.Nil(t, clock.Layout(views, 0))
	assert.Nil(t, clock.Layout(nil, 3))
	assert.Len(t, clock.Layout(views, 2), 3)
}
