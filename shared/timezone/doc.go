// Package timezone holds the restaurant's location, configured through
// APP_TIMEZONE (an IANA name such as "Europe/Lisbon"; UTC when unset).
//
// Request timestamps without an explicit offset are read in this location,
// so the hour and minute the engine compares against the service hours are
// the restaurant's wall clock:
//
//	start, err := timezone.ParseStart("2024-05-01T19:30")
//	start, err := timezone.ParseDateTime("2024-05-01", "19:30")
package timezone
