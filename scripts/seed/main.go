package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	"github.com/dealinsight-dev/deal-insight/internal/infrastructure/database"
	"github.com/dealinsight-dev/deal-insight/pkg/config"
	pkgjwt "github.com/dealinsight-dev/deal-insight/pkg/jwt"
)

// seedOrganizationID is fixed so reruns replace the same demo data
var seedOrganizationID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func main() {
	log.Println("🚀 Seeding demo deals...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	log.Println("🗑️  Cleaning up existing demo data...")
	db.Where("interaction_id IN (SELECT id FROM interactions WHERE deal_id IN (SELECT id FROM deals WHERE organization_id = ?))", seedOrganizationID).Delete(&entities.InteractionSummary{})
	db.Where("interaction_id IN (SELECT id FROM interactions WHERE deal_id IN (SELECT id FROM deals WHERE organization_id = ?))", seedOrganizationID).Delete(&entities.InteractionParticipant{})
	db.Where("deal_id IN (SELECT id FROM deals WHERE organization_id = ?)", seedOrganizationID).Delete(&entities.Interaction{})
	db.Where("organization_id = ?", seedOrganizationID).Delete(&entities.AssessmentJob{})
	db.Where("organization_id = ?", seedOrganizationID).Delete(&entities.DealRiskAssessment{})
	db.Unscoped().Where("organization_id = ?", seedOrganizationID).Delete(&entities.Deal{})

	log.Println("💼 Creating demo deals...")

	now := time.Now().UTC()
	created := 0
	for _, seed := range demoDeals(now) {
		if err := db.Create(seed.deal).Error; err != nil {
			log.Printf("❌ Failed to create deal %s: %v", seed.deal.Name, err)
			continue
		}
		for _, interaction := range seed.interactions {
			interaction.DealID = seed.deal.ID
			if err := db.Create(interaction).Error; err != nil {
				log.Printf("❌ Failed to create interaction %s: %v", interaction.Title, err)
			}
		}
		created++
		log.Printf("✅ %s (%s, %d interactions)", seed.deal.Name, seed.deal.Stage, len(seed.interactions))
	}

	// Generate a service token so the demo data is reachable over the API
	jwtManager := pkgjwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)
	token, err := jwtManager.GenerateServiceToken(seedOrganizationID, "seed-cli")
	if err != nil {
		log.Fatalf("Failed to generate service token: %v", err)
	}

	fmt.Printf("\n═══════════════════════════════════════════════════════\n")
	fmt.Printf("🟢 Seeded %d deals for organization %s\n", created, seedOrganizationID)
	fmt.Printf("🔑 Service token (expires in %v):\n%s\n", cfg.JWT.Expiry, token)
	fmt.Printf("\nTry: curl -H \"Authorization: Bearer <token>\" http://localhost:%s/v1/deals\n", cfg.Server.Port)
	fmt.Printf("═══════════════════════════════════════════════════════\n")
}

type dealSeed struct {
	deal         *entities.Deal
	interactions []*entities.Interaction
}

func demoDeals(now time.Time) []dealSeed {
	return []dealSeed{
		{
			deal: newDeal("Acme Corp renewal", entities.DealStageNegotiation, floatPtr(120000), strPtr("USD")),
			interactions: []*entities.Interaction{
				{
					Title:           "Renewal kickoff",
					ScheduledAt:     timePtr(now.AddDate(0, 0, -12)),
					DurationSeconds: 3600,
					EngagementScore: floatPtr(78),
					Participants: []entities.InteractionParticipant{
						{Name: "Priya Nair", Email: strPtr("priya.nair@acme.example"), Role: strPtr("CFO"), TalkTimeSeconds: 840},
						{Name: "Tom Reyes", Email: strPtr("tom.reyes@acme.example"), Role: strPtr("IT Director"), TalkTimeSeconds: 1200},
					},
					Summaries: []entities.InteractionSummary{
						{
							Overview:    "Reviewed current usage and renewal terms.",
							KeyPoints:   []string{"Usage grew 40% year over year", "Multi-year discount requested"},
							ActionItems: []string{"Send revised multi-year quote"},
						},
					},
				},
				{
					Title:           "Contract review call",
					ScheduledAt:     timePtr(now.AddDate(0, 0, -3)),
					DurationSeconds: 1800,
					EngagementScore: floatPtr(82),
					Participants: []entities.InteractionParticipant{
						{Name: "Priya Nair", Email: strPtr("priya.nair@acme.example"), Role: strPtr("CFO"), TalkTimeSeconds: 600},
						{Name: "Dana Wolfe", Email: strPtr("dana.wolfe@acme.example"), Role: strPtr("Procurement Lead"), TalkTimeSeconds: 700},
					},
					Summaries: []entities.InteractionSummary{
						{
							Overview:    "Walked through redlines with procurement.",
							KeyPoints:   []string{"Legal sign-off expected this week"},
							ActionItems: []string{"Confirm signature date", "Share updated order form"},
						},
					},
				},
			},
		},
		{
			deal: newDeal("Globex platform rollout", entities.DealStageDiscovery, floatPtr(85000), strPtr("USD")),
			interactions: []*entities.Interaction{
				{
					Title:           "Technical discovery",
					ScheduledAt:     timePtr(now.AddDate(0, 0, -6)),
					DurationSeconds: 2700,
					EngagementScore: floatPtr(55),
					Participants: []entities.InteractionParticipant{
						{Name: "Lena Fischer", Email: strPtr("lena.fischer@globex.example"), Role: strPtr("Engineering Manager"), TalkTimeSeconds: 1500},
					},
					Summaries: []entities.InteractionSummary{
						{
							Overview:    "Compared integration effort against the incumbent vendor.",
							KeyPoints:   []string{"Team is also evaluating a competitor", "Concerns about migration timeline"},
							ActionItems: []string{"Provide migration runbook"},
						},
					},
				},
			},
		},
		{
			deal: newDeal("Initech data migration", entities.DealStageProposal, floatPtr(40000), strPtr("USD")),
			interactions: []*entities.Interaction{
				{
					Title:           "Proposal walkthrough",
					ScheduledAt:     timePtr(now.AddDate(0, 0, -21)),
					DurationSeconds: 1500,
					EngagementScore: floatPtr(38),
					Participants: []entities.InteractionParticipant{
						{Name: "Milton Wade", Email: strPtr("milton.wade@initech.example"), TalkTimeSeconds: 300},
					},
					Summaries: []entities.InteractionSummary{
						{
							Overview:  "Presented the migration proposal.",
							KeyPoints: []string{"Budget approval is uncertain this quarter", "Pricing seen as too expensive"},
						},
					},
				},
			},
		},
		{
			deal: newDeal("Umbrella pilot", entities.DealStageProspecting, nil, nil),
		},
		{
			deal: newDeal("Stark Industries expansion", entities.DealStageClosedWon, floatPtr(250000), strPtr("USD")),
			interactions: []*entities.Interaction{
				{
					Title:           "Executive signoff",
					ScheduledAt:     timePtr(now.AddDate(0, -1, 0)),
					DurationSeconds: 900,
					EngagementScore: floatPtr(91),
					Participants: []entities.InteractionParticipant{
						{Name: "Pepper Collins", Email: strPtr("pepper.collins@stark.example"), Role: strPtr("COO"), TalkTimeSeconds: 400},
					},
					Summaries: []entities.InteractionSummary{
						{
							Overview: "Final terms accepted, contract signed.",
						},
					},
				},
			},
		},
	}
}

func newDeal(name string, stage entities.DealStage, amount *float64, currency *string) *entities.Deal {
	return &entities.Deal{
		ID:             uuid.New(),
		OrganizationID: seedOrganizationID,
		Name:           name,
		Stage:          stage,
		Amount:         amount,
		Currency:       currency,
	}
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }
