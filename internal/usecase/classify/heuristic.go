package classify

import (
	"context"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
)

// HeuristicClassifier grades participants without an LLM. Everyone gets
// the generic participant role; engagement is scored from attendance
// alone. It never fails, which is what makes it a safe fallback.
type HeuristicClassifier struct{}

// NewHeuristicClassifier creates a new heuristic role classifier
func NewHeuristicClassifier() *HeuristicClassifier {
	return &HeuristicClassifier{}
}

// ClassifyRoles assigns the generic role and attendance-based engagement
// to every roster participant
func (c *HeuristicClassifier) ClassifyRoles(ctx context.Context, roster []entities.ParticipantProfile) ([]entities.RoleAssignment, error) {
	assignments := make([]entities.RoleAssignment, 0, len(roster))

	for _, profile := range roster {
		assignments = append(assignments, entities.RoleAssignment{
			Participant:     profile,
			Role:            entities.RoleParticipant,
			EngagementLevel: engagementFromAttendance(profile.InteractionCount),
		})
	}

	return assignments, nil
}

// engagementFromAttendance grades engagement purely by meeting count:
// three or more interactions is high, two is medium, fewer is low.
func engagementFromAttendance(interactionCount int) entities.EngagementLevel {
	switch {
	case interactionCount >= 3:
		return entities.EngagementLevelHigh
	case interactionCount >= 2:
		return entities.EngagementLevelMedium
	default:
		return entities.EngagementLevelLow
	}
}
