// Package dateutil formats times using a fixed set of named layouts and
// answers the usual "how long since" and "how long until" questions.
//
// All calculations use the location of the time passed in. Midnight means
// the start of the calendar day in that location.
//
//	s, _ := dateutil.Format(t, dateutil.HTMLDateTime) // "01/15/24 02:30:00 PM"
//	wait := dateutil.TimeUntil(now, 9*time.Hour)       // until the next 09:00
package dateutil
