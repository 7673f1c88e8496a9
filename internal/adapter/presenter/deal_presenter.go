package presenter

import (
	"github.com/dealinsight-dev/deal-insight/internal/adapter/dto/deal"
	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
)

// ToDealResponse converts a Deal entity to DealResponse DTO
func ToDealResponse(d *entities.Deal) *deal.DealResponse {
	if d == nil {
		return nil
	}

	response := &deal.DealResponse{
		ID:             d.ID.String(),
		OrganizationID: d.OrganizationID.String(),
		Name:           d.Name,
		Stage:          string(d.Stage),
		Amount:         d.Amount,
		Currency:       d.Currency,
		LastRiskScore:  d.LastRiskScore,
		LastAssessedAt: d.LastAssessedAt,
		NextReviewAt:   d.NextReviewAt,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}

	if d.OwnerID != nil {
		ownerID := d.OwnerID.String()
		response.OwnerID = &ownerID
	}

	if d.LastRiskLevel != nil {
		level := string(*d.LastRiskLevel)
		response.LastRiskLevel = &level
	}

	return response
}

// ToDealListResponse converts a slice of Deal entities to DealListResponse
func ToDealListResponse(deals []*entities.Deal, total int64, page, pageSize int) *deal.DealListResponse {
	dealResponses := make([]*deal.DealResponse, len(deals))
	for i, d := range deals {
		dealResponses[i] = ToDealResponse(d)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &deal.DealListResponse{
		Deals:      dealResponses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// ToInteractionResponse converts an Interaction entity to InteractionResponse DTO
func ToInteractionResponse(i *entities.Interaction) *deal.InteractionResponse {
	if i == nil {
		return nil
	}

	response := &deal.InteractionResponse{
		ID:              i.ID.String(),
		DealID:          i.DealID.String(),
		Title:           i.Title,
		ExternalRef:     i.ExternalRef,
		ScheduledAt:     i.ScheduledAt,
		DurationSeconds: i.DurationSeconds,
		EngagementScore: i.EngagementScore,
		CreatedAt:       i.CreatedAt,
	}

	if len(i.Participants) > 0 {
		response.Participants = make([]*deal.InteractionParticipantResponse, len(i.Participants))
		for j, p := range i.Participants {
			response.Participants[j] = &deal.InteractionParticipantResponse{
				ID:              p.ID.String(),
				Name:            p.Name,
				Email:           p.Email,
				Role:            p.Role,
				TalkTimeSeconds: p.TalkTimeSeconds,
			}
		}
	}

	if len(i.Summaries) > 0 {
		response.Summaries = make([]*deal.InteractionSummaryResponse, len(i.Summaries))
		for j, s := range i.Summaries {
			response.Summaries[j] = &deal.InteractionSummaryResponse{
				ID:          s.ID.String(),
				Overview:    s.Overview,
				KeyPoints:   s.KeyPoints,
				ActionItems: s.ActionItems,
				Decisions:   s.Decisions,
			}
		}
	}

	return response
}

// ToInteractionListResponse converts a slice of Interaction entities to
// InteractionListResponse
func ToInteractionListResponse(interactions []*entities.Interaction, total int64, page, pageSize int) *deal.InteractionListResponse {
	interactionResponses := make([]*deal.InteractionResponse, len(interactions))
	for i, interaction := range interactions {
		interactionResponses[i] = ToInteractionResponse(interaction)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &deal.InteractionListResponse{
		Interactions: interactionResponses,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   totalPages,
	}
}
