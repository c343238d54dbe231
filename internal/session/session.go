// Package session tracks the study group's weekly sessions: Monday to
// Sunday windows in Korean time, with the submission deadline at Sunday
// 23:59:59.
package session

import (
	"fmt"
	"time"
)

// Session is one weekly study round.
type Session struct {
	Number int
	Monday time.Time
	Sunday time.Time
}

// Zone returns the study group's timezone. Everything deadline-related
// is computed in Asia/Seoul regardless of where the CI runner lives.
func Zone() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		// Seoul has no DST; a fixed offset is equivalent.
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

// Week returns the Monday..Sunday window containing now.
func Week(now time.Time) (monday, sunday time.Time) {
	now = now.In(Zone())
	weekday := int(now.Weekday()+6) % 7 // Monday = 0
	monday = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, Zone()).
		AddDate(0, 0, -weekday)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// Deadline returns Sunday 23:59:59 of the week containing now.
func Deadline(now time.Time) time.Time {
	_, sunday := Week(now)
	return time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, 0, Zone())
}

// TimeLeft reports the remaining time before the current week's deadline.
// A negative duration means the deadline has passed.
func TimeLeft(now time.Time) time.Duration {
	return Deadline(now).Sub(now.In(Zone()))
}

// WeekNumber returns the 1-based week number of the year: full weeks
// elapsed between January 1st and the week's Monday, plus one.
func WeekNumber(now time.Time) int {
	monday, _ := Week(now)
	yearStart := time.Date(monday.Year(), 1, 1, 0, 0, 0, 0, Zone())
	return int(monday.Sub(yearStart).Hours()/24)/7 + 1
}

// Label renders the session header used in announcements and the README.
func (s Session) Label() string {
	return fmt.Sprintf("Session %d (%s ~ %s)",
		s.Number, s.Monday.Format("2006-01-02"), s.Sunday.Format("2006-01-02"))
}
