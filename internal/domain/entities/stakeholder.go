package entities

// StakeholderRole is one of the fixed sales roles expected on a healthy deal
type StakeholderRole string

const (
	RoleEconomicBuyer     StakeholderRole = "Economic Buyer"
	RoleDecisionMaker     StakeholderRole = "Decision Maker"
	RoleTechnicalChampion StakeholderRole = "Technical Champion"
	RoleEndUser           StakeholderRole = "End User"
	RoleInfluencer        StakeholderRole = "Influencer"

	// RoleParticipant is the generic label assigned by the heuristic
	// fallback when no classification is available.
	RoleParticipant StakeholderRole = "Participant"
)

// RequiredRoles lists the stakeholder roles a healthy deal should cover
var RequiredRoles = []StakeholderRole{
	RoleEconomicBuyer,
	RoleDecisionMaker,
	RoleTechnicalChampion,
	RoleEndUser,
	RoleInfluencer,
}

// RoleImportance indicates how badly a missing role hurts the deal
type RoleImportance string

const (
	RoleImportanceCritical RoleImportance = "critical"
	RoleImportanceHigh     RoleImportance = "high"
)

// ImportanceOf returns the importance of a missing required role.
// Economic Buyer and Decision Maker are critical, the rest high.
func ImportanceOf(role StakeholderRole) RoleImportance {
	if role == RoleEconomicBuyer || role == RoleDecisionMaker {
		return RoleImportanceCritical
	}
	return RoleImportanceHigh
}

// EngagementLevel grades how engaged a single stakeholder is
type EngagementLevel string

const (
	EngagementLevelLow    EngagementLevel = "low"
	EngagementLevelMedium EngagementLevel = "medium"
	EngagementLevelHigh   EngagementLevel = "high"
)

// RoleAssignment is the classifier's verdict for one roster participant
type RoleAssignment struct {
	Participant     ParticipantProfile `json:"participant"`
	Role            StakeholderRole    `json:"role"`
	EngagementLevel EngagementLevel    `json:"engagement_level"`
}

// MissingRole is a required role absent from the detected set
type MissingRole struct {
	Role       StakeholderRole `json:"role"`
	Importance RoleImportance  `json:"importance"`
}

// StakeholderAnalysis is the coverage picture of a deal's roster.
// Computed fresh on every assessment, never persisted.
type StakeholderAnalysis struct {
	Detected      []RoleAssignment `json:"detected"`
	MissingRoles  []MissingRole    `json:"missing_roles"`
	CoverageScore int              `json:"coverage_score"`
}
