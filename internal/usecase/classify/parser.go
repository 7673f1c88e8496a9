package classify

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	usecaseErrors "github.com/dealinsight-dev/deal-insight/internal/usecase/errors"
)

// Parser handles parsing and validation of classifier LLM responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// classificationWire is the JSON shape the LLM is prompted to return
type classificationWire struct {
	Assignments []roleAssignmentWire `json:"assignments"`
}

type roleAssignmentWire struct {
	Name            string `json:"name"`
	Email           string `json:"email,omitempty"`
	Role            string `json:"role"`
	EngagementLevel string `json:"engagement_level"`
}

var knownRoles = map[entities.StakeholderRole]bool{
	entities.RoleEconomicBuyer:     true,
	entities.RoleDecisionMaker:     true,
	entities.RoleTechnicalChampion: true,
	entities.RoleEndUser:           true,
	entities.RoleInfluencer:        true,
	entities.RoleParticipant:       true,
}

// ParseRoleAssignments parses the JSON response from the LLM into role
// assignments matched against the roster. Assignments that do not match
// any roster participant are dropped; roster participants the LLM did
// not mention come back as generic participants so the result always
// covers the full roster.
func (p *Parser) ParseRoleAssignments(jsonString string, roster []entities.ParticipantProfile) ([]entities.RoleAssignment, error) {
	// Extract JSON from response (the model might wrap it in markdown code blocks)
	jsonString = extractJSON(jsonString)

	var wire classificationWire
	if err := json.Unmarshal([]byte(jsonString), &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrClassificationMalformed, err)
	}

	if len(wire.Assignments) == 0 {
		return nil, fmt.Errorf("%w: no assignments in response", usecaseErrors.ErrClassificationMalformed)
	}

	// Index the roster by dedup key so LLM output maps back to profiles
	index := make(map[string]entities.ParticipantProfile, len(roster))
	for _, profile := range roster {
		index[entities.RosterKey(profile.Name, profile.Email)] = profile
	}

	matched := make(map[string]entities.RoleAssignment, len(wire.Assignments))
	for _, a := range wire.Assignments {
		var email *string
		if a.Email != "" {
			email = &a.Email
		}
		key := entities.RosterKey(a.Name, email)

		profile, ok := index[key]
		if !ok {
			continue
		}

		matched[key] = entities.RoleAssignment{
			Participant:     profile,
			Role:            normalizeRole(a.Role),
			EngagementLevel: normalizeEngagementLevel(a.EngagementLevel),
		}
	}

	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: no assignment matched the roster", usecaseErrors.ErrClassificationMalformed)
	}

	// Preserve roster order, padding out participants the LLM skipped
	assignments := make([]entities.RoleAssignment, 0, len(roster))
	for _, profile := range roster {
		key := entities.RosterKey(profile.Name, profile.Email)
		if assignment, ok := matched[key]; ok {
			assignments = append(assignments, assignment)
			continue
		}
		assignments = append(assignments, entities.RoleAssignment{
			Participant:     profile,
			Role:            entities.RoleParticipant,
			EngagementLevel: entities.EngagementLevelMedium,
		})
	}

	return assignments, nil
}

// normalizeRole maps free-form role text onto the fixed role set.
// Unknown labels fall back to the generic participant role.
func normalizeRole(raw string) entities.StakeholderRole {
	role := entities.StakeholderRole(strings.TrimSpace(raw))
	if knownRoles[role] {
		return role
	}

	// Tolerate case drift from the model
	for known := range knownRoles {
		if strings.EqualFold(string(known), string(role)) {
			return known
		}
	}

	return entities.RoleParticipant
}

func normalizeEngagementLevel(raw string) entities.EngagementLevel {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return entities.EngagementLevelLow
	case "high":
		return entities.EngagementLevelHigh
	default:
		return entities.EngagementLevelMedium
	}
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
