package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/crestadmit/portal/internal/apperr"
	"github.com/crestadmit/portal/internal/documents"
	"github.com/crestadmit/portal/internal/documents/repository"
	"github.com/crestadmit/portal/pkg/metrics"
)

// ErrNotFound is re-exported so callers don't need the repository package.
var ErrNotFound = repository.ErrNotFound

// Service implements the document lifecycle. Clients own their documents and
// may save drafts and submit for review; the consultant records feedback.
// Every write goes through the repository first; callers reflect the change
// only after the write succeeds.
type Service struct {
	repo repository.Repository
}

func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// NewMemory returns a Service backed by the in-memory repository.
func NewMemory() *Service {
	return New(repository.NewMemoryRepo())
}

// Create inserts a new document in draft state with empty content and
// version 1. Essay titles are prefixed with the chosen school when one is
// given ("{school} - {title}"). Title and a valid type are required.
func (s *Service) Create(ctx context.Context, clientID string, typ documents.Type, title, school string) (*documents.Document, error) {
	if clientID == "" {
		return nil, apperr.Validation("client profile required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, apperr.Validation("title is required")
	}
	if !typ.Valid() {
		return nil, apperr.Validation("unknown document type %q", string(typ))
	}
	if typ == documents.TypeEssay && school != "" {
		title = school + " - " + title
	}
	d := &documents.Document{
		ID:       uuid.NewString(),
		ClientID: clientID,
		Type:     typ,
		Title:    title,
		Content:  "",
		Status:   documents.StatusDraft,
		Version:  1,
	}
	if _, err := s.repo.Insert(ctx, d); err != nil {
		return nil, apperr.Persistence("insert document", err)
	}
	metrics.DocumentOps.WithLabelValues("create").Inc()
	return d, nil
}

// SaveDraft replaces the content and bumps the version by one, forcing the
// status back to draft even when the document was in review. The increment is
// computed from the last-fetched version, not atomically by the store; two
// concurrent saves against a stale copy can lose an update.
func (s *Service) SaveDraft(ctx context.Context, clientID, id, content string) error {
	d, err := s.owned(ctx, clientID, id)
	if err != nil {
		return err
	}
	if !d.Status.Editable() {
		return apperr.Validation("document is finalized")
	}
	status := documents.StatusDraft
	version := d.Version + 1
	upd := repository.Update{Content: &content, Status: &status, Version: &version}
	if err := s.repo.Update(ctx, id, upd); err != nil {
		if err == repository.ErrNotFound {
			return err
		}
		return apperr.Persistence("save draft", err)
	}
	metrics.DocumentOps.WithLabelValues("save_draft").Inc()
	return nil
}

// SubmitForReview replaces the content with the edited buffer and moves the
// document to review. The version is unchanged.
func (s *Service) SubmitForReview(ctx context.Context, clientID, id, content string) error {
	d, err := s.owned(ctx, clientID, id)
	if err != nil {
		return err
	}
	if !d.Status.Editable() {
		return apperr.Validation("document is finalized")
	}
	status := documents.StatusReview
	upd := repository.Update{Content: &content, Status: &status}
	if err := s.repo.Update(ctx, id, upd); err != nil {
		if err == repository.ErrNotFound {
			return err
		}
		return apperr.Persistence("submit for review", err)
	}
	metrics.DocumentOps.WithLabelValues("submit").Inc()
	return nil
}

// SetFeedback records consultant feedback, leaving content, status and
// version untouched (the admin summary-edit path).
func (s *Service) SetFeedback(ctx context.Context, id, feedback string) error {
	upd := repository.Update{Feedback: &feedback}
	if err := s.repo.Update(ctx, id, upd); err != nil {
		if err == repository.ErrNotFound {
			return err
		}
		return apperr.Persistence("set feedback", err)
	}
	metrics.DocumentOps.WithLabelValues("feedback").Inc()
	return nil
}

// Review replaces content and feedback together without touching status or
// version (the admin detail-edit path).
func (s *Service) Review(ctx context.Context, id, content, feedback string) error {
	upd := repository.Update{Content: &content, Feedback: &feedback}
	if err := s.repo.Update(ctx, id, upd); err != nil {
		if err == repository.ErrNotFound {
			return err
		}
		return apperr.Persistence("review document", err)
	}
	metrics.DocumentOps.WithLabelValues("review").Inc()
	return nil
}

// Attach records an uploaded object key against the document. Uploads come
// through the client portal, which verifies ownership before calling.
func (s *Service) Attach(ctx context.Context, id, key string) error {
	if key == "" {
		return apperr.Validation("attachment key required")
	}
	if err := s.repo.AppendAttachment(ctx, id, key); err != nil {
		if err == repository.ErrNotFound {
			return err
		}
		return apperr.Persistence("append attachment", err)
	}
	return nil
}

// Get returns one document.
func (s *Service) Get(ctx context.Context, id string) (*documents.Document, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, err
		}
		return nil, apperr.Persistence("get document", err)
	}
	return d, nil
}

// ListByClient returns a client's documents ordered by updatedAt descending.
func (s *Service) ListByClient(ctx context.Context, clientID string) ([]*documents.Document, error) {
	out, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, apperr.Persistence("list documents", err)
	}
	return out, nil
}

// List returns all documents ordered by updatedAt descending (admin view).
func (s *Service) List(ctx context.Context) ([]*documents.Document, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Persistence("list documents", err)
	}
	return out, nil
}

// owned fetches a document and verifies the caller owns it.
func (s *Service) owned(ctx context.Context, clientID, id string) (*documents.Document, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, err
		}
		return nil, apperr.Persistence("get document", err)
	}
	if d.ClientID != clientID {
		return nil, apperr.ErrForbidden
	}
	return d, nil
}
