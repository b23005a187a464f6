package handler

import (
	"errors"
	"net/http"
	"path"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crestadmit/portal/internal/apperr"
	"github.com/crestadmit/portal/internal/clients"
	"github.com/crestadmit/portal/internal/dashboard"
	"github.com/crestadmit/portal/internal/deadlines"
	"github.com/crestadmit/portal/internal/documents"
	docservice "github.com/crestadmit/portal/internal/documents/service"
	"github.com/crestadmit/portal/internal/identity"
	"github.com/crestadmit/portal/internal/storage"
	"github.com/crestadmit/portal/pkg/middleware"
)

// deadlineDisplayLimit caps the upcoming-deadline strip on the client
// dashboard.
const deadlineDisplayLimit = 6

// Handler wires the dashboard controllers to HTTP. A controller is built per
// request from the verified identity, loaded, and discarded.
type Handler struct {
	profiles *clients.Service
	docs     *docservice.Service
	table    deadlines.Repository
	store    *storage.MinIOStorage // nil when object storage is not configured
}

func New(profiles *clients.Service, docs *docservice.Service, table deadlines.Repository, store *storage.MinIOStorage) *Handler {
	return &Handler{profiles: profiles, docs: docs, table: table, store: store}
}

// Register mounts the portal and admin routes on an authenticated group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/catalog", h.catalog)

	portal := rg.Group("/portal", middleware.RequireRole(identity.RoleClient))
	portal.GET("", h.clientSnapshot)
	portal.POST("/documents", h.createDocument)
	portal.PUT("/documents/:id/draft", h.saveDraft)
	portal.PUT("/documents/:id/submit", h.submitForReview)
	portal.PUT("/targets", h.saveTargets)
	portal.POST("/documents/:id/attachments", h.uploadAttachment)
	portal.GET("/documents/:id/attachments/:key", h.attachmentURL)

	admin := rg.Group("/admin", middleware.RequireRole(identity.RoleAdmin))
	admin.GET("", h.adminSnapshot)
	admin.PUT("/documents/:id/feedback", h.saveFeedback)
	admin.PUT("/documents/:id/review", h.reviewDocument)
	admin.PUT("/clients/:id", h.updateClient)
}

// toasts collects the per-operation notification signals so the UI can render
// them after the response.
type toasts struct {
	Notices []gin.H `json:"notices"`
}

func (t *toasts) Success(msg string) { t.Notices = append(t.Notices, gin.H{"kind": "success", "message": msg}) }
func (t *toasts) Error(msg string)   { t.Notices = append(t.Notices, gin.H{"kind": "error", "message": msg}) }

func (h *Handler) catalog(c *gin.Context) {
	types := make([]gin.H, 0, len(documents.Types))
	for _, dt := range documents.Types {
		types = append(types, gin.H{"value": dt, "label": dt.Label()})
	}
	c.JSON(http.StatusOK, gin.H{
		"schools":       clients.Schools,
		"rounds":        clients.Rounds,
		"documentTypes": types,
	})
}

func (h *Handler) clientController(c *gin.Context, notify dashboard.Notifier) (*dashboard.ClientController, bool) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil, false
	}
	ctl := dashboard.NewClientController(ident, h.profiles, h.docs, h.table, notify)
	if err := ctl.Load(c.Request.Context()); err != nil {
		writeError(c, err)
		return nil, false
	}
	return ctl, true
}

func (h *Handler) clientSnapshot(c *gin.Context) {
	t := &toasts{}
	ctl, ok := h.clientController(c, t)
	if !ok {
		return
	}
	byType := map[string][]*documents.Document{}
	for typ, docs := range ctl.DocumentsByType() {
		byType[string(typ)] = docs
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":         ctl.Profile(),
		"documents":       ctl.Documents(),
		"documentsByType": byType,
		"deadlines":       ctl.RelevantDeadlines(deadlineDisplayLimit),
		"stats":           ctl.Stats(),
	})
}

func (h *Handler) createDocument(c *gin.Context) {
	var req struct {
		Type   string `json:"documentType"`
		Title  string `json:"title"`
		School string `json:"school"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := &toasts{}
	ctl, ok := h.clientController(c, t)
	if !ok {
		return
	}
	d, err := ctl.CreateDocument(c.Request.Context(), documents.Type(req.Type), req.Title, req.School)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"document": d, "notices": t.Notices})
}

func (h *Handler) saveDraft(c *gin.Context) {
	h.clientDocumentWrite(c, func(ctl *dashboard.ClientController, id, content string) error {
		return ctl.SaveDraft(c.Request.Context(), id, content)
	})
}

func (h *Handler) submitForReview(c *gin.Context) {
	h.clientDocumentWrite(c, func(ctl *dashboard.ClientController, id, content string) error {
		return ctl.SubmitForReview(c.Request.Context(), id, content)
	})
}

func (h *Handler) clientDocumentWrite(c *gin.Context, op func(ctl *dashboard.ClientController, id, content string) error) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := &toasts{}
	ctl, ok := h.clientController(c, t)
	if !ok {
		return
	}
	if err := op(ctl, c.Param("id"), req.Content); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": ctl.Documents(), "notices": t.Notices})
}

func (h *Handler) saveTargets(c *gin.Context) {
	var req struct {
		TargetSchools    []string `json:"targetSchools"`
		ApplicationRound string   `json:"applicationRound"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := &toasts{}
	ctl, ok := h.clientController(c, t)
	if !ok {
		return
	}
	if err := ctl.SaveTargets(c.Request.Context(), req.TargetSchools, req.ApplicationRound); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": ctl.Profile(), "notices": t.Notices})
}

func (h *Handler) uploadAttachment(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "object storage not configured"})
		return
	}
	ctl, ok := h.clientController(c, nil)
	if !ok {
		return
	}
	docID := c.Param("id")
	if !ownsDocument(ctl, docID) {
		writeError(c, apperr.ErrForbidden)
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	key := docID + "/" + path.Base(fh.Filename)
	ctype := fh.Header.Get("Content-Type")
	if err := h.store.UploadFile(c.Request.Context(), key, f, fh.Size, ctype); err != nil {
		writeError(c, apperr.Persistence("upload attachment", err))
		return
	}
	if err := h.docs.Attach(c.Request.Context(), docID, key); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"key": key})
}

func (h *Handler) attachmentURL(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "object storage not configured"})
		return
	}
	ctl, ok := h.clientController(c, nil)
	if !ok {
		return
	}
	docID := c.Param("id")
	if !ownsDocument(ctl, docID) {
		writeError(c, apperr.ErrForbidden)
		return
	}
	key := docID + "/" + c.Param("key")
	url, err := h.store.GetPresignedURL(c.Request.Context(), key, 15*time.Minute)
	if err != nil {
		writeError(c, apperr.Persistence("presign attachment", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func ownsDocument(ctl *dashboard.ClientController, docID string) bool {
	for _, d := range ctl.Documents() {
		if d.ID == docID {
			return true
		}
	}
	return false
}

func (h *Handler) adminController(c *gin.Context, notify dashboard.Notifier) (*dashboard.AdminController, bool) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil, false
	}
	ctl := dashboard.NewAdminController(ident, h.profiles, h.docs, notify)
	if err := ctl.Load(c.Request.Context()); err != nil {
		writeError(c, err)
		return nil, false
	}
	return ctl, true
}

func (h *Handler) adminSnapshot(c *gin.Context) {
	ctl, ok := h.adminController(c, nil)
	if !ok {
		return
	}
	ctl.SetSearch(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"clients":   ctl.FilteredClients(),
		"documents": ctl.Documents(),
		"stats":     ctl.Stats(),
	})
}

func (h *Handler) saveFeedback(c *gin.Context) {
	var req struct {
		Feedback string `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := &toasts{}
	ctl, ok := h.adminController(c, t)
	if !ok {
		return
	}
	if err := ctl.SaveFeedback(c.Request.Context(), c.Param("id"), req.Feedback); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": t.Notices})
}

func (h *Handler) reviewDocument(c *gin.Context) {
	var req struct {
		Content  string `json:"content"`
		Feedback string `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := &toasts{}
	ctl, ok := h.adminController(c, t)
	if !ok {
		return
	}
	if err := ctl.ReviewDocument(c.Request.Context(), c.Param("id"), req.Content, req.Feedback); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": t.Notices})
}

func (h *Handler) updateClient(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := &toasts{}
	ctl, ok := h.adminController(c, t)
	if !ok {
		return
	}
	if err := ctl.UpdateClientReview(c.Request.Context(), c.Param("id"), req.Status, req.Notes); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": t.Notices})
}

// writeError maps engine errors onto HTTP statuses. Persistence and unknown
// errors are attached to the context so the Sentry middleware can report
// them.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dashboard.ErrWrongRole):
		c.JSON(http.StatusForbidden, gin.H{"error": "wrong role for this dashboard", "redirect": "/auth"})
	case apperr.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, docservice.ErrNotFound), errors.Is(err, clients.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, apperr.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case apperr.IsPersistence(err):
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "storage rejected the operation"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
