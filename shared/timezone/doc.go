// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Resolving a zone once and reusing it:
//     loc, err := timezone.Load("Asia/Tokyo")
//
//  2. Wall-clock time in a zone:
//     local, err := timezone.In(time.Now(), "Europe/London")
//
//  3. Formatting a clock face:
//     timezone.FormatTime(local)   // "03:04:05 PM"
//     timezone.FormatDate(local)   // "Monday, January 02, 2006"
//     timezone.FormatOffset(local) // "UTC+00:00"
//
//  4. The application reference zone, used for server-side timestamps:
//     timezone.Init("UTC")
//     timezone.Now()
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "Asia/Karachi", "America/New_York", "Europe/London"
//
// Loaded locations are cached for the lifetime of the process.
package timezone
