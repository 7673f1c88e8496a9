package entities

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Interaction represents a recorded meeting tied to a deal, with
// participants and AI-generated summaries pushed in by the meeting platform
type Interaction struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DealID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"deal_id"`
	Deal            *Deal      `gorm:"foreignKey:DealID" json:"deal,omitempty"`
	Title           string     `gorm:"type:varchar(255)" json:"title"`
	ExternalRef     *string    `gorm:"type:varchar(255);uniqueIndex" json:"external_ref,omitempty"`
	ScheduledAt     *time.Time `gorm:"index" json:"scheduled_at,omitempty"`
	DurationSeconds int        `json:"duration_seconds,omitempty"`

	// EngagementScore is the 0-100 number derived by the meeting platform
	// for this single interaction; nil when the platform did not supply one.
	EngagementScore *float64 `json:"engagement_score,omitempty"`

	Participants []InteractionParticipant `gorm:"foreignKey:InteractionID" json:"participants,omitempty"`
	Summaries    []InteractionSummary     `gorm:"foreignKey:InteractionID" json:"summaries,omitempty"`

	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Interaction
func (Interaction) TableName() string {
	return "interactions"
}

// InteractionParticipant represents one attendee of an interaction
type InteractionParticipant struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InteractionID   uuid.UUID `gorm:"type:uuid;not null;index" json:"interaction_id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Email           *string   `gorm:"type:varchar(255);index" json:"email,omitempty"`
	Role            *string   `gorm:"type:varchar(100)" json:"role,omitempty"`
	TalkTimeSeconds int       `json:"talk_time_seconds,omitempty"`
	CreatedAt       time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for InteractionParticipant
func (InteractionParticipant) TableName() string {
	return "interaction_participants"
}

// InteractionSummary represents one AI summary attached to an interaction
type InteractionSummary struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InteractionID uuid.UUID                   `gorm:"type:uuid;not null;index" json:"interaction_id"`
	Overview      string                      `gorm:"type:text" json:"overview"`
	KeyPoints     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"key_points,omitempty"`
	ActionItems   datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"action_items,omitempty"`
	Decisions     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"decisions,omitempty"`
	CreatedAt     time.Time                   `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for InteractionSummary
func (InteractionSummary) TableName() string {
	return "interaction_summaries"
}

// ScanText returns the text unit scanned by keyword detectors: the overview
// concatenated with the key points
func (s *InteractionSummary) ScanText() string {
	parts := make([]string, 0, len(s.KeyPoints)+1)
	if s.Overview != "" {
		parts = append(parts, s.Overview)
	}
	parts = append(parts, s.KeyPoints...)
	return strings.Join(parts, " ")
}

// HasActionItems reports whether the summary carries at least one action item
func (s *InteractionSummary) HasActionItems() bool {
	return len(s.ActionItems) > 0
}

// SortInteractionsByRecency orders interactions most recent first.
// Interactions without a scheduled time sort last.
func SortInteractionsByRecency(interactions []*Interaction) {
	sort.SliceStable(interactions, func(i, j int) bool {
		a, b := interactions[i].ScheduledAt, interactions[j].ScheduledAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}

// ParticipantProfile is the deduplicated per-deal roster entry built from
// every interaction's attendee list. Participants are merged by lowercased
// email, falling back to lowercased name when no email was recorded.
type ParticipantProfile struct {
	Name             string  `json:"name"`
	Email            *string `json:"email,omitempty"`
	Role             *string `json:"role,omitempty"`
	InteractionCount int     `json:"interaction_count"`
	TalkTimeSeconds  int     `json:"talk_time_seconds"`
}

// RosterKey returns the deduplication key for a participant
func RosterKey(name string, email *string) string {
	if email != nil && *email != "" {
		return strings.ToLower(strings.TrimSpace(*email))
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// BuildRoster collapses the participants of all interactions into a
// deduplicated roster with per-participant aggregates
func BuildRoster(interactions []*Interaction) []ParticipantProfile {
	index := make(map[string]int)
	roster := make([]ParticipantProfile, 0)

	for _, interaction := range interactions {
		for _, p := range interaction.Participants {
			key := RosterKey(p.Name, p.Email)
			if key == "" {
				continue
			}

			i, seen := index[key]
			if !seen {
				index[key] = len(roster)
				roster = append(roster, ParticipantProfile{
					Name:  p.Name,
					Email: p.Email,
					Role:  p.Role,
				})
				i = index[key]
			}

			roster[i].InteractionCount++
			roster[i].TalkTimeSeconds += p.TalkTimeSeconds
			if roster[i].Role == nil && p.Role != nil {
				roster[i].Role = p.Role
			}
		}
	}

	return roster
}
