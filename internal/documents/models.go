package documents

import "time"

// Type is the closed set of application artifact kinds.
type Type string

const (
	TypeResume Type = "resume"
	TypeEssay  Type = "essay"
	TypeLOR    Type = "lor"
	TypeStory  Type = "story"
	TypeOther  Type = "other"
)

// Types lists all document types in display order.
var Types = []Type{TypeResume, TypeEssay, TypeLOR, TypeStory, TypeOther}

func (t Type) Valid() bool {
	switch t {
	case TypeResume, TypeEssay, TypeLOR, TypeStory, TypeOther:
		return true
	}
	return false
}

// Label returns the human-readable name used by both dashboards.
func (t Type) Label() string {
	switch t {
	case TypeResume:
		return "Resume"
	case TypeEssay:
		return "Essay"
	case TypeLOR:
		return "Letter of Recommendation"
	case TypeStory:
		return "Story/Experience"
	default:
		return "Other"
	}
}

// Status is the document lifecycle state. StatusFinal is declared as a
// terminal label but no transition reaches it; editing operations reject it
// as a source state.
type Status string

const (
	StatusDraft  Status = "draft"
	StatusReview Status = "review"
	StatusFinal  Status = "final"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusReview, StatusFinal:
		return true
	}
	return false
}

// Editable reports whether client editing operations (save draft, submit for
// review) may start from this state.
func (s Status) Editable() bool {
	return s == StatusDraft || s == StatusReview
}

// Document is a single application artifact with versioned content and
// consultant feedback. Version starts at 1 and increments by exactly one on
// each successful client draft save; no other operation changes it.
type Document struct {
	ID          string    `bson:"id" json:"id"`
	ClientID    string    `bson:"clientId" json:"clientId"`
	Type        Type      `bson:"documentType" json:"documentType"`
	Title       string    `bson:"title" json:"title"`
	Content     string    `bson:"content,omitempty" json:"content,omitempty"`
	Status      Status    `bson:"status" json:"status"`
	Feedback    string    `bson:"feedback,omitempty" json:"feedback,omitempty"`
	Version     int       `bson:"version" json:"version"`
	Attachments []string  `bson:"attachments,omitempty" json:"attachments,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// GroupByType buckets documents by type, preserving input order within each
// bucket.
func GroupByType(docs []*Document) map[Type][]*Document {
	out := make(map[Type][]*Document)
	for _, d := range docs {
		out[d.Type] = append(out[d.Type], d)
	}
	return out
}
