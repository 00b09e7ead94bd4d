package domain

import (
	"time"

	"github.com/google/uuid"
)

type SuggestionStatus string

const (
	SuggestionStatusPending    SuggestionStatus = "pending"
	SuggestionStatusInProgress SuggestionStatus = "in_progress"
	SuggestionStatusResolved   SuggestionStatus = "resolved"
	SuggestionStatusArchived   SuggestionStatus = "archived"
)

// ValidResponseStatus reports whether an admin reply may move a suggestion
// to the given status. Pending is only ever the initial state; archived is
// terminal and guarded separately at the store.
func ValidResponseStatus(s SuggestionStatus) bool {
	switch s {
	case SuggestionStatusInProgress, SuggestionStatusResolved, SuggestionStatusArchived:
		return true
	}
	return false
}

type SuggestionCategory string

const (
	CategoryInfraestructura SuggestionCategory = "infraestructura"
	CategoryEventos         SuggestionCategory = "eventos"
	CategoryBienestar       SuggestionCategory = "bienestar"
	CategoryAcademico       SuggestionCategory = "academico"
	CategoryOtro            SuggestionCategory = "otro"
)

func ValidCategory(c SuggestionCategory) bool {
	switch c {
	case CategoryInfraestructura, CategoryEventos, CategoryBienestar, CategoryAcademico, CategoryOtro:
		return true
	}
	return false
}

type Suggestion struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Body        string             `json:"body"`
	Category    SuggestionCategory `json:"category"`
	Contact     string             `json:"contact,omitempty"`
	AuthorID    uuid.UUID          `json:"author_id"`
	Status      SuggestionStatus   `json:"status"`
	AdminReply  *string            `json:"admin_reply,omitempty"`
	RepliedAt   *time.Time         `json:"replied_at,omitempty"`
	RespondedBy *uuid.UUID         `json:"responded_by,omitempty"`
	IsFlagged   bool               `json:"is_flagged"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
