package deadlines

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleTable() []Deadline {
	return []Deadline{
		{ID: "hbs-r1", SchoolName: "Harvard Business School", RoundName: "Round 1", Date: day(2026, time.September, 9)},
		{ID: "gsb-r1", SchoolName: "Stanford Graduate School of Business", RoundName: "Round 1", Date: day(2026, time.September, 15)},
		{ID: "cbs-ed", SchoolName: "Columbia Business School", RoundName: "Early Decision", Date: day(2026, time.September, 29)},
		{ID: "hbs-r2", SchoolName: "Harvard Business School", RoundName: "Round 2", Date: day(2027, time.January, 6)},
		{ID: "intl-r2", SchoolName: "Stanford Graduate School of Business", RoundName: "round 2 (international)", Date: day(2027, time.January, 10)},
	}
}

func TestRelevant_MatchesSchoolAndRound(t *testing.T) {
	got := Relevant([]string{"Harvard Business School"}, "Round 1", sampleTable())
	require.Len(t, got, 1)
	require.Equal(t, "hbs-r1", got[0].ID)
}

func TestRelevant_RoundTokenIsSubstring(t *testing.T) {
	// "Round 2" reduces to token "2" and matches both plain and suffixed labels
	got := Relevant([]string{"Harvard Business School", "Stanford Graduate School of Business"}, "Round 2", sampleTable())
	require.Len(t, got, 2)
	require.Equal(t, "hbs-r2", got[0].ID)
	require.Equal(t, "intl-r2", got[1].ID)
}

func TestRelevant_EarlyDecisionDoesNotMatchRounds(t *testing.T) {
	got := Relevant([]string{"Columbia Business School", "Harvard Business School"}, "Early Decision", sampleTable())
	require.Len(t, got, 1)
	require.Equal(t, "cbs-ed", got[0].ID)
}

func TestRelevant_CaseInsensitive(t *testing.T) {
	got := Relevant([]string{"Harvard Business School"}, "ROUND 1", sampleTable())
	require.Len(t, got, 1)
}

func TestRelevant_EmptyInputs(t *testing.T) {
	table := sampleTable()
	require.Empty(t, Relevant(nil, "Round 1", table))
	require.Empty(t, Relevant([]string{"Harvard Business School"}, "", table))
	require.NotNil(t, Relevant(nil, "", table))
}

func TestRelevant_PreservesOrderAndReturnsFreshSlice(t *testing.T) {
	table := sampleTable()
	got := Relevant([]string{"Harvard Business School", "Stanford Graduate School of Business"}, "Round 1", table)
	require.Len(t, got, 2)
	require.True(t, got[0].Date.Before(got[1].Date))

	// mutating the result must not touch the table
	got[0].SchoolName = "mutated"
	require.Equal(t, "Harvard Business School", table[0].SchoolName)
}

func TestDaysLeft_IgnoresTimeOfDay(t *testing.T) {
	deadline := day(2026, time.September, 9)
	// late evening, one day out
	now := time.Date(2026, time.September, 8, 23, 30, 0, 0, time.UTC)
	require.Equal(t, 1, DaysLeft(now, deadline))
	// same day, any hour
	require.Equal(t, 0, DaysLeft(time.Date(2026, time.September, 9, 18, 0, 0, 0, time.UTC), deadline))
	// day after
	require.Equal(t, -1, DaysLeft(day(2026, time.September, 10), deadline))
}

func TestClassify_Boundaries(t *testing.T) {
	require.Equal(t, Past, Classify(-1))
	require.Equal(t, Urgent, Classify(0))
	require.Equal(t, Urgent, Classify(14))
	require.Equal(t, Normal, Classify(15))
}

func TestEvaluate(t *testing.T) {
	now := day(2026, time.September, 1)
	ds := []Deadline{
		{ID: "a", Date: day(2026, time.August, 30)},    // passed
		{ID: "b", Date: day(2026, time.September, 10)}, // 9 days: urgent
		{ID: "c", Date: day(2026, time.October, 30)},   // far out
	}
	got := Evaluate(now, ds)
	require.Len(t, got, 3)
	require.Equal(t, Past, got[0].Classification)
	require.Equal(t, -2, got[0].DaysLeft)
	require.Equal(t, Urgent, got[1].Classification)
	require.Equal(t, 9, got[1].DaysLeft)
	require.Equal(t, Normal, got[2].Classification)
}

func TestMemoryRepository_SortsAndCopies(t *testing.T) {
	table := []Deadline{
		{ID: "later", Date: day(2027, time.January, 5)},
		{ID: "sooner", Date: day(2026, time.September, 1)},
	}
	repo := NewMemoryRepository(table)
	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "sooner", got[0].ID)
	require.Equal(t, "later", got[1].ID)

	got[0].ID = "mutated"
	again, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "sooner", again[0].ID)
}
