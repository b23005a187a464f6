package dashboard

import (
	"context"
	"strings"

	"github.com/crestadmit/portal/internal/clients"
	"github.com/crestadmit/portal/internal/documents"
	docservice "github.com/crestadmit/portal/internal/documents/service"
	"github.com/crestadmit/portal/internal/identity"
)

// AdminStats are the headline counters on the consultant dashboard.
type AdminStats struct {
	Clients   int `json:"clients"`
	Documents int `json:"documents"`
}

// AdminController orchestrates the consultant dashboard: the full client
// roster, every document across clients, the roster search filter, and the
// consultant-side mutations (feedback, review edits, client status/notes).
type AdminController struct {
	ident   identity.Identity
	clients *clients.Service
	docs    *docservice.Service
	notify  Notifier

	roster    []*clients.Profile
	documents []*documents.Document
	search    string
}

func NewAdminController(ident identity.Identity, cl *clients.Service, docs *docservice.Service, notify Notifier) *AdminController {
	if notify == nil {
		notify = nopNotifier{}
	}
	return &AdminController{ident: ident, clients: cl, docs: docs, notify: notify}
}

// Load fetches the roster (newest first) and all documents (latest updated
// first). Requires the admin role; a failed read leaves prior state intact.
func (a *AdminController) Load(ctx context.Context) error {
	if !a.ident.IsAdmin() {
		return ErrWrongRole
	}
	roster, err := a.clients.List(ctx)
	if err != nil {
		a.notify.Error("Failed to load clients")
		return err
	}
	a.roster = roster

	docs, err := a.docs.List(ctx)
	if err != nil {
		a.notify.Error("Failed to load documents")
		return err
	}
	a.documents = docs
	return nil
}

func (a *AdminController) Documents() []*documents.Document { return a.documents }
func (a *AdminController) Roster() []*clients.Profile       { return a.roster }

// SetSearch updates the roster search term.
func (a *AdminController) SetSearch(term string) { a.search = term }

// FilteredClients applies the case-insensitive substring search over client
// name and email. An empty term matches everyone.
func (a *AdminController) FilteredClients() []*clients.Profile {
	term := strings.ToLower(a.search)
	out := []*clients.Profile{}
	for _, p := range a.roster {
		if term == "" ||
			strings.Contains(strings.ToLower(p.FullName), term) ||
			strings.Contains(strings.ToLower(p.Email), term) {
			out = append(out, p)
		}
	}
	return out
}

// Stats derives the headline counters.
func (a *AdminController) Stats() AdminStats {
	return AdminStats{Clients: len(a.roster), Documents: len(a.documents)}
}

// SaveFeedback records feedback on a document without touching its content or
// status (summary-edit path), then refetches the document list.
func (a *AdminController) SaveFeedback(ctx context.Context, docID, feedback string) error {
	if err := a.docs.SetFeedback(ctx, docID, feedback); err != nil {
		a.notify.Error("Failed to save feedback")
		return err
	}
	a.notify.Success("Feedback saved successfully")
	return a.refreshDocuments(ctx)
}

// ReviewDocument replaces content and feedback together (detail-edit path)
// without a version bump, then refetches.
func (a *AdminController) ReviewDocument(ctx context.Context, docID, content, feedback string) error {
	if err := a.docs.Review(ctx, docID, content, feedback); err != nil {
		a.notify.Error("Failed to save review")
		return err
	}
	a.notify.Success("Review saved successfully")
	return a.refreshDocuments(ctx)
}

// UpdateClientReview sets a client's engagement status and notes, then
// refetches the roster.
func (a *AdminController) UpdateClientReview(ctx context.Context, clientID, status, notes string) error {
	if err := a.clients.SetReview(ctx, clientID, status, notes); err != nil {
		a.notify.Error("Failed to update client")
		return err
	}
	a.notify.Success("Client updated")
	roster, err := a.clients.List(ctx)
	if err != nil {
		return err
	}
	a.roster = roster
	return nil
}

func (a *AdminController) refreshDocuments(ctx context.Context) error {
	docs, err := a.docs.List(ctx)
	if err != nil {
		return err
	}
	a.documents = docs
	return nil
}
