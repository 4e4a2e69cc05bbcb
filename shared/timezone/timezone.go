package timezone

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	TimeLayout = "03:04:05 PM"
	DateLayout = "Monday, January 02, 2006"
)

var (
	appLocation atomic.Pointer[time.Location]
	locations   sync.Map
)

// Init sets the application timezone, falling back to UTC when name cannot be loaded.
func Init(name string) {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		appLocation.Store(time.UTC)

		return
	}

	loc, err := Load(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Karachi', 'UTC', 'America/New_York'")
		appLocation.Store(time.UTC)

		return
	}

	appLocation.Store(loc)
	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Load returns the location for an IANA name. Successful lookups are cached.
func Load(name string) (*time.Location, error) {
	if cached, ok := locations.Load(name); ok {
		return cached.(*time.Location), nil
	}

	if name == "" {
		return nil, fmt.Errorf("empty timezone identifier")
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locations.Store(name, loc)

	return loc, nil
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	loc := appLocation.Load()
	if loc == nil {
		return time.UTC
	}

	return loc
}

// In converts t to the named zone.
func In(t time.Time, name string) (time.Time, error) {
	loc, err := Load(name)
	if err != nil {
		return time.Time{}, err
	}

	return t.In(loc), nil
}

// FormatTime renders a 12-hour clock with seconds and an AM/PM marker.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// FormatDate renders the full weekday, month, day and year.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatOffset returns the UTC offset of t in UTC±HH:MM form.
func FormatOffset(t time.Time) string {
	_, offset := t.Zone()

	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}

	hours := offset / 3600
	minutes := (offset % 3600) / 60

	return fmt.Sprintf("UTC%s%02d:%02d", sign, hours, minutes)
}
