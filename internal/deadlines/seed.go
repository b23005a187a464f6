package deadlines

import "time"

// SeedTable returns a starter deadline table for the 2026-27 application
// cycle, using the same school names as the client catalog. It populates the
// in-memory repository in dev deployments without Mongo; production loads the
// table from the deadlines collection.
func SeedTable() []Deadline {
	d := func(y int, m time.Month, day int) time.Time {
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}
	return []Deadline{
		{ID: "hbs-r1", SchoolName: "Harvard Business School", RoundName: "Round 1", Date: d(2026, time.September, 9)},
		{ID: "hbs-r2", SchoolName: "Harvard Business School", RoundName: "Round 2", Date: d(2027, time.January, 6)},
		{ID: "gsb-r1", SchoolName: "Stanford GSB", RoundName: "Round 1", Date: d(2026, time.September, 15)},
		{ID: "gsb-r2", SchoolName: "Stanford GSB", RoundName: "Round 2", Date: d(2027, time.January, 7)},
		{ID: "wharton-r1", SchoolName: "Wharton", RoundName: "Round 1", Date: d(2026, time.September, 8)},
		{ID: "wharton-r2", SchoolName: "Wharton", RoundName: "Round 2", Date: d(2027, time.January, 5)},
		{ID: "booth-r1", SchoolName: "Booth", RoundName: "Round 1", Date: d(2026, time.September, 24)},
		{ID: "booth-r2", SchoolName: "Booth", RoundName: "Round 2", Date: d(2027, time.January, 7)},
		{ID: "kellogg-r1", SchoolName: "Kellogg", RoundName: "Round 1", Date: d(2026, time.September, 16)},
		{ID: "kellogg-r2", SchoolName: "Kellogg", RoundName: "Round 2", Date: d(2027, time.January, 6)},
		{ID: "cbs-ed", SchoolName: "Columbia Business School", RoundName: "Early Decision", Date: d(2026, time.September, 29)},
		{ID: "cbs-r1", SchoolName: "Columbia Business School", RoundName: "Round 1 (Regular Decision)", Date: d(2027, time.January, 5)},
		{ID: "mit-r1", SchoolName: "MIT Sloan", RoundName: "Round 1", Date: d(2026, time.September, 29)},
		{ID: "mit-r2", SchoolName: "MIT Sloan", RoundName: "Round 2", Date: d(2027, time.January, 19)},
		{ID: "insead-r1", SchoolName: "INSEAD", RoundName: "Round 1", Date: d(2026, time.September, 22)},
		{ID: "lbs-r1", SchoolName: "LBS", RoundName: "Round 1", Date: d(2026, time.September, 2)},
		{ID: "lbs-r2", SchoolName: "LBS", RoundName: "Round 2", Date: d(2027, time.January, 5)},
		{ID: "isb-r1", SchoolName: "ISB", RoundName: "Round 1", Date: d(2026, time.September, 13)},
		{ID: "isb-r2", SchoolName: "ISB", RoundName: "Round 2", Date: d(2026, time.December, 6)},
	}
}
