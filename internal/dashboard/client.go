package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/crestadmit/portal/internal/apperr"
	"github.com/crestadmit/portal/internal/clients"
	"github.com/crestadmit/portal/internal/deadlines"
	"github.com/crestadmit/portal/internal/documents"
	docservice "github.com/crestadmit/portal/internal/documents/service"
	"github.com/crestadmit/portal/internal/identity"
)

// ErrWrongRole is returned by Load when the session's role does not match the
// dashboard. The boundary redirects; nothing is fetched.
var ErrWrongRole = errors.New("session role does not grant access to this dashboard")

// ClientStats are the counters shown at the top of the client dashboard.
type ClientStats struct {
	Documents    int `json:"documents"`
	Drafts       int `json:"drafts"`
	InReview     int `json:"inReview"`
	WithFeedback int `json:"withFeedback"`
}

// ClientController orchestrates the client dashboard: it sequences the
// profile → documents fetch, pulls the deadline table independently, holds
// the fetched state, and dispatches the client-side engine operations.
// State mutates only after a confirmed write, via refetch or a local apply
// of the written values.
type ClientController struct {
	ident    identity.Identity
	profiles *clients.Service
	docs     *docservice.Service
	table    deadlines.Repository
	notify   Notifier
	now      func() time.Time

	profile   *clients.Profile
	documents []*documents.Document
	deadlines []deadlines.Deadline
}

func NewClientController(ident identity.Identity, profiles *clients.Service, docs *docservice.Service, table deadlines.Repository, notify Notifier) *ClientController {
	if notify == nil {
		notify = nopNotifier{}
	}
	return &ClientController{
		ident:    ident,
		profiles: profiles,
		docs:     docs,
		table:    table,
		notify:   notify,
		now:      time.Now,
	}
}

// Load performs the mount fetch: role check, then profile, then the
// profile's documents, then the deadline table. A failed read leaves the
// previously loaded state intact.
func (c *ClientController) Load(ctx context.Context) error {
	if !c.ident.IsClient() {
		return ErrWrongRole
	}
	profile, err := c.profiles.GetByUserID(ctx, c.ident.UserID)
	if err != nil {
		c.notify.Error("Failed to load your profile")
		return err
	}
	c.profile = profile

	if profile != nil {
		docs, err := c.docs.ListByClient(ctx, profile.ID)
		if err != nil {
			c.notify.Error("Failed to load documents")
			return err
		}
		c.documents = docs
	} else {
		c.documents = nil
	}

	table, err := c.table.List(ctx)
	if err != nil {
		c.notify.Error("Failed to load deadlines")
		return apperr.Persistence("fetch deadlines", err)
	}
	c.deadlines = table
	return nil
}

func (c *ClientController) Profile() *clients.Profile        { return c.profile }
func (c *ClientController) Documents() []*documents.Document { return c.documents }

// DocumentsByType groups the loaded documents for the tabbed document list.
func (c *ClientController) DocumentsByType() map[documents.Type][]*documents.Document {
	return documents.GroupByType(c.documents)
}

// RelevantDeadlines matches the deadline table against the loaded profile and
// evaluates urgency as of now. max > 0 caps the result (the dashboard shows
// the first six); the table's ascending date order is preserved.
func (c *ClientController) RelevantDeadlines(max int) []deadlines.Upcoming {
	if c.profile == nil {
		return []deadlines.Upcoming{}
	}
	matched := deadlines.Relevant(c.profile.TargetSchools, c.profile.ApplicationRound, c.deadlines)
	if max > 0 && len(matched) > max {
		matched = matched[:max]
	}
	return deadlines.Evaluate(c.now(), matched)
}

// Stats derives the dashboard counters from the loaded documents.
func (c *ClientController) Stats() ClientStats {
	st := ClientStats{Documents: len(c.documents)}
	for _, d := range c.documents {
		switch d.Status {
		case documents.StatusDraft:
			st.Drafts++
		case documents.StatusReview:
			st.InReview++
		}
		if d.Feedback != "" {
			st.WithFeedback++
		}
	}
	return st
}

// CreateDocument creates a new document and prepends it to the loaded list
// once the insert is confirmed.
func (c *ClientController) CreateDocument(ctx context.Context, typ documents.Type, title, school string) (*documents.Document, error) {
	if c.profile == nil {
		err := apperr.Validation("no client profile")
		c.notify.Error("Please fill in all fields")
		return nil, err
	}
	d, err := c.docs.Create(ctx, c.profile.ID, typ, title, school)
	if err != nil {
		if apperr.IsValidation(err) {
			c.notify.Error("Please fill in all fields")
		} else {
			c.notify.Error("Failed to create document")
		}
		return nil, err
	}
	c.documents = append([]*documents.Document{d}, c.documents...)
	c.notify.Success("Document created successfully")
	return d, nil
}

// SaveDraft saves the edited buffer as a new draft version and refetches.
func (c *ClientController) SaveDraft(ctx context.Context, docID, content string) error {
	if c.profile == nil {
		return apperr.Validation("no client profile")
	}
	if err := c.docs.SaveDraft(ctx, c.profile.ID, docID, content); err != nil {
		c.notify.Error("Failed to save document")
		return err
	}
	c.notify.Success("Document saved successfully")
	return c.refresh(ctx)
}

// SubmitForReview submits the edited buffer for consultant review and
// refetches.
func (c *ClientController) SubmitForReview(ctx context.Context, docID, content string) error {
	if c.profile == nil {
		return apperr.Validation("no client profile")
	}
	if err := c.docs.SubmitForReview(ctx, c.profile.ID, docID, content); err != nil {
		c.notify.Error("Failed to submit for review")
		return err
	}
	c.notify.Success("Document submitted for review")
	return c.refresh(ctx)
}

// SaveTargets replaces the target-school set and round. On success the local
// profile reflects the written values without a refetch.
func (c *ClientController) SaveTargets(ctx context.Context, schools []string, round string) error {
	if c.profile == nil {
		return apperr.Validation("no client profile")
	}
	if err := c.profiles.SetTargets(ctx, c.profile.ID, schools, round); err != nil {
		c.notify.Error("Failed to save schools")
		return err
	}
	cp := *c.profile
	cp.TargetSchools = append([]string(nil), schools...)
	cp.ApplicationRound = round
	c.profile = &cp
	c.notify.Success("Target schools updated")
	return nil
}

// refresh reloads the document list after a confirmed write. The profile and
// deadline table are left as-is.
func (c *ClientController) refresh(ctx context.Context) error {
	docs, err := c.docs.ListByClient(ctx, c.profile.ID)
	if err != nil {
		return err
	}
	c.documents = docs
	return nil
}
