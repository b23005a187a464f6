package deadlines

import (
	"math"
	"strings"
	"time"
)

// urgentWindowDays is the days-left threshold at or below which an upcoming
// deadline is classified urgent.
const urgentWindowDays = 14

// Relevant filters the master deadline table down to the entries matching the
// client's target schools and application round. The table is expected to be
// pre-sorted ascending by date; order is preserved and the result is always a
// fresh slice. Empty target schools or an unset round yield an empty result.
//
// Round matching is deliberately loose: the round label is lower-cased, the
// literal "round " prefix stripped, and the remaining token matched as a
// case-insensitive substring of the table's round name. "Round 2" therefore
// matches "Round 2" and "round 2 (international)", while "Early Decision"
// only matches rows whose round name contains "early decision".
func Relevant(targetSchools []string, applicationRound string, table []Deadline) []Deadline {
	out := []Deadline{}
	if len(targetSchools) == 0 || applicationRound == "" {
		return out
	}
	token := strings.Replace(strings.ToLower(applicationRound), "round ", "", 1)
	for _, d := range table {
		if !containsString(targetSchools, d.SchoolName) {
			continue
		}
		if !strings.Contains(strings.ToLower(d.RoundName), token) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// DaysLeft computes calendar days between now and the deadline, ignoring
// time-of-day. Negative means the deadline has passed.
func DaysLeft(now, deadline time.Time) int {
	n := midnight(now)
	d := midnight(deadline)
	return int(math.Ceil(d.Sub(n).Hours() / 24))
}

// Classify maps a days-left value to its urgency bucket.
func Classify(daysLeft int) Classification {
	switch {
	case daysLeft < 0:
		return Past
	case daysLeft <= urgentWindowDays:
		return Urgent
	default:
		return Normal
	}
}

// Evaluate annotates each deadline with days-left and classification as of
// the given instant. Order is preserved.
func Evaluate(now time.Time, ds []Deadline) []Upcoming {
	out := make([]Upcoming, 0, len(ds))
	for _, d := range ds {
		left := DaysLeft(now, d.Date)
		out = append(out, Upcoming{Deadline: d, DaysLeft: left, Classification: Classify(left)})
	}
	return out
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
