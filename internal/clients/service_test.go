package clients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) (*Service, *MemoryRepository) {
	t.Helper()
	repo := NewMemoryRepository()
	repo.Put(&Profile{ID: "p1", UserID: "u1", FullName: "Ada Applicant", Email: "ada@example.com"})
	return NewService(repo), repo
}

func TestGetByUserID_MissingIsNil(t *testing.T) {
	svc, _ := seeded(t)
	p, err := svc.GetByUserID(context.Background(), "unknown-user")
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestSetTargets_DedupesAndStores(t *testing.T) {
	svc, _ := seeded(t)
	ctx := context.Background()

	schools := []string{"Harvard Business School", "Wharton School", "Harvard Business School"}
	require.NoError(t, svc.SetTargets(ctx, "p1", schools, "Round 2"))

	p, err := svc.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, []string{"Harvard Business School", "Wharton School"}, p.TargetSchools)
	require.Equal(t, "Round 2", p.ApplicationRound)
}

func TestSetTargets_EmptyRoundUnsets(t *testing.T) {
	svc, _ := seeded(t)
	ctx := context.Background()

	require.NoError(t, svc.SetTargets(ctx, "p1", []string{"INSEAD"}, "Round 1"))
	require.NoError(t, svc.SetTargets(ctx, "p1", []string{"INSEAD"}, ""))

	p, err := svc.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.Empty(t, p.ApplicationRound)
}

func TestSetTargets_MissingProfile(t *testing.T) {
	svc, _ := seeded(t)
	err := svc.SetTargets(context.Background(), "nope", []string{"INSEAD"}, "Round 1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSetReview_DefaultsStatus(t *testing.T) {
	svc, _ := seeded(t)
	ctx := context.Background()

	require.NoError(t, svc.SetReview(ctx, "p1", "", "strong profile, push R1"))
	p, err := svc.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, StatusActive, p.Status)
	require.Equal(t, "strong profile, push R1", p.Notes)

	require.NoError(t, svc.SetReview(ctx, "p1", "paused", ""))
	p, err = svc.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "paused", p.Status)
}

func TestSetReview_DoesNotTouchTargets(t *testing.T) {
	svc, _ := seeded(t)
	ctx := context.Background()

	require.NoError(t, svc.SetTargets(ctx, "p1", []string{"MIT Sloan"}, "Round 1"))
	require.NoError(t, svc.SetReview(ctx, "p1", "active", "notes"))

	p, err := svc.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, []string{"MIT Sloan"}, p.TargetSchools)
	require.Equal(t, "Round 1", p.ApplicationRound)
}

func TestList_NewestFirst(t *testing.T) {
	svc, repo := seeded(t)
	repo.Put(&Profile{ID: "p2", UserID: "u2", FullName: "Newer Client", Email: "new@example.com"})

	out, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "p2", out[0].ID)
}
