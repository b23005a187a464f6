package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/crestadmit/portal/internal/clients"
	"github.com/crestadmit/portal/internal/deadlines"
	"github.com/crestadmit/portal/internal/documents"
	docservice "github.com/crestadmit/portal/internal/documents/service"
)

type fixture struct {
	router   *gin.Engine
	profiles *clients.Service
	docs     *docservice.Service
}

// newFixture builds a router with the portal routes behind a middleware that
// injects verified claims, the way the auth middleware does in production.
func newFixture(t *testing.T, claims map[string]interface{}) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := clients.NewMemoryRepository()
	repo.Put(&clients.Profile{
		ID:               "p1",
		UserID:           "u1",
		FullName:         "Ada Applicant",
		Email:            "ada@example.com",
		TargetSchools:    []string{"Harvard Business School"},
		ApplicationRound: "Round 1",
	})
	profiles := clients.NewService(repo)
	docs := docservice.NewMemory()

	table := deadlines.NewMemoryRepository([]deadlines.Deadline{
		{ID: "hbs-r1", SchoolName: "Harvard Business School", RoundName: "Round 1", Date: time.Now().UTC().Add(10 * 24 * time.Hour)},
	})

	r := gin.New()
	api := r.Group("/api/v1", func(c *gin.Context) {
		c.Set("claims", claims)
		c.Next()
	})
	New(profiles, docs, table, nil).Register(api)
	return &fixture{router: r, profiles: profiles, docs: docs}
}

func clientClaims() map[string]interface{} {
	return map[string]interface{}{"sub": "u1", "email": "ada@example.com", "name": "Ada Applicant", "role": "client"}
}

func adminClaims() map[string]interface{} {
	return map[string]interface{}{"sub": "consultant", "email": "c@example.com", "name": "Consultant", "role": "admin"}
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	return got
}

func TestClientSnapshot(t *testing.T) {
	f := newFixture(t, clientClaims())
	_, err := f.docs.Create(context.Background(), "p1", documents.TypeResume, "Resume", "")
	require.NoError(t, err)

	w := do(t, f.router, "GET", "/api/v1/portal", "")
	require.Equal(t, http.StatusOK, w.Code)

	got := decode(t, w)
	require.NotNil(t, got["profile"])
	require.Len(t, got["documents"], 1)
	require.Len(t, got["deadlines"], 1)
	stats := got["stats"].(map[string]interface{})
	require.Equal(t, float64(1), stats["documents"])
}

func TestClientRoutes_RejectAdminRole(t *testing.T) {
	f := newFixture(t, adminClaims())
	w := do(t, f.router, "GET", "/api/v1/portal", "")
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "/auth", decode(t, w)["redirect"])
}

func TestAdminRoutes_RejectClientRole(t *testing.T) {
	f := newFixture(t, clientClaims())
	w := do(t, f.router, "GET", "/api/v1/admin", "")
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateDocumentRoute(t *testing.T) {
	f := newFixture(t, clientClaims())

	w := do(t, f.router, "POST", "/api/v1/portal/documents", `{"documentType":"essay","title":"Why MBA","school":"Harvard Business School"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	got := decode(t, w)
	doc := got["document"].(map[string]interface{})
	require.Equal(t, "Harvard Business School - Why MBA", doc["title"])
	require.Equal(t, "draft", doc["status"])
	require.Equal(t, float64(1), doc["version"])
	require.NotEmpty(t, got["notices"])
}

func TestCreateDocumentRoute_Validation(t *testing.T) {
	f := newFixture(t, clientClaims())
	w := do(t, f.router, "POST", "/api/v1/portal/documents", `{"documentType":"resume","title":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveDraftRoute(t *testing.T) {
	f := newFixture(t, clientClaims())
	d, err := f.docs.Create(context.Background(), "p1", documents.TypeResume, "Resume", "")
	require.NoError(t, err)

	w := do(t, f.router, "PUT", "/api/v1/portal/documents/"+d.ID+"/draft", `{"content":"updated"}`)
	require.Equal(t, http.StatusOK, w.Code)

	got, err := f.docs.Get(context.Background(), d.ID)
	require.NoError(t, err)
	require.Equal(t, "updated", got.Content)
	require.Equal(t, 2, got.Version)
}

func TestSaveDraftRoute_OtherClientsDocument(t *testing.T) {
	f := newFixture(t, clientClaims())
	d, err := f.docs.Create(context.Background(), "someone-else", documents.TypeResume, "Resume", "")
	require.NoError(t, err)

	w := do(t, f.router, "PUT", "/api/v1/portal/documents/"+d.ID+"/draft", `{"content":"hijack"}`)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestSaveDraftRoute_Missing(t *testing.T) {
	f := newFixture(t, clientClaims())
	w := do(t, f.router, "PUT", "/api/v1/portal/documents/nope/draft", `{"content":"x"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitRoute(t *testing.T) {
	f := newFixture(t, clientClaims())
	d, err := f.docs.Create(context.Background(), "p1", documents.TypeEssay, "Essay", "")
	require.NoError(t, err)

	w := do(t, f.router, "PUT", "/api/v1/portal/documents/"+d.ID+"/submit", `{"content":"done"}`)
	require.Equal(t, http.StatusOK, w.Code)

	got, err := f.docs.Get(context.Background(), d.ID)
	require.NoError(t, err)
	require.Equal(t, documents.StatusReview, got.Status)
}

func TestSaveTargetsRoute(t *testing.T) {
	f := newFixture(t, clientClaims())

	w := do(t, f.router, "PUT", "/api/v1/portal/targets", `{"targetSchools":["MIT Sloan","INSEAD"],"applicationRound":"Round 2"}`)
	require.Equal(t, http.StatusOK, w.Code)

	p, err := f.profiles.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, []string{"MIT Sloan", "INSEAD"}, p.TargetSchools)
	require.Equal(t, "Round 2", p.ApplicationRound)
}

func TestAdminSnapshotAndSearch(t *testing.T) {
	f := newFixture(t, adminClaims())
	_, err := f.docs.Create(context.Background(), "p1", documents.TypeResume, "Resume", "")
	require.NoError(t, err)

	w := do(t, f.router, "GET", "/api/v1/admin", "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	require.Len(t, got["clients"], 1)
	require.Len(t, got["documents"], 1)

	w = do(t, f.router, "GET", "/api/v1/admin?q=zzz", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, decode(t, w)["clients"])
}

func TestAdminFeedbackRoute(t *testing.T) {
	f := newFixture(t, adminClaims())
	d, err := f.docs.Create(context.Background(), "p1", documents.TypeEssay, "Essay", "")
	require.NoError(t, err)

	w := do(t, f.router, "PUT", "/api/v1/admin/documents/"+d.ID+"/feedback", `{"feedback":"tighten it"}`)
	require.Equal(t, http.StatusOK, w.Code)

	got, err := f.docs.Get(context.Background(), d.ID)
	require.NoError(t, err)
	require.Equal(t, "tighten it", got.Feedback)
}

func TestAdminReviewRoute(t *testing.T) {
	f := newFixture(t, adminClaims())
	d, err := f.docs.Create(context.Background(), "p1", documents.TypeEssay, "Essay", "")
	require.NoError(t, err)

	w := do(t, f.router, "PUT", "/api/v1/admin/documents/"+d.ID+"/review", `{"content":"edited","feedback":"see notes"}`)
	require.Equal(t, http.StatusOK, w.Code)

	got, err := f.docs.Get(context.Background(), d.ID)
	require.NoError(t, err)
	require.Equal(t, "edited", got.Content)
	require.Equal(t, "see notes", got.Feedback)
	require.Equal(t, 1, got.Version)
}

func TestAdminUpdateClientRoute(t *testing.T) {
	f := newFixture(t, adminClaims())

	w := do(t, f.router, "PUT", "/api/v1/admin/clients/p1", `{"status":"paused","notes":"waiting on scores"}`)
	require.Equal(t, http.StatusOK, w.Code)

	p, err := f.profiles.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, "paused", p.Status)
	require.Equal(t, "waiting on scores", p.Notes)
}

func TestAdminUpdateClientRoute_Missing(t *testing.T) {
	f := newFixture(t, adminClaims())
	w := do(t, f.router, "PUT", "/api/v1/admin/clients/ghost", `{"status":"active"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogRoute(t *testing.T) {
	f := newFixture(t, clientClaims())
	w := do(t, f.router, "GET", "/api/v1/catalog", "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	require.NotEmpty(t, got["schools"])
	require.NotEmpty(t, got["rounds"])

	types, ok := got["documentTypes"].([]interface{})
	require.True(t, ok)
	require.Len(t, types, 5)
	first, ok := types[0].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "resume", first["value"])
	require.Equal(t, "Resume", first["label"])
}

func TestAttachmentRoutes_NoStorageConfigured(t *testing.T) {
	f := newFixture(t, clientClaims())
	d, err := f.docs.Create(context.Background(), "p1", documents.TypeOther, "Transcript", "")
	require.NoError(t, err)

	w := do(t, f.router, "POST", "/api/v1/portal/documents/"+d.ID+"/attachments", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(t, f.router, "GET", "/api/v1/portal/documents/"+d.ID+"/attachments/file.pdf", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
