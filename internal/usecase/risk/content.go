package risk

import (
	"strings"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
)

// Keyword sets scanned by the content detectors. Matching is
// case-insensitive substring over a summary's overview and key points, so
// singular forms also catch their plurals.
var (
	competitiveKeywords = []string{
		"competitor",
		"alternative",
		"versus",
		"switching",
		"other vendor",
		"shortlist",
	}

	budgetKeywords = []string{
		"budget",
		"cost",
		"price",
		"expensive",
		"cheaper",
		"discount",
		"roi",
		"afford",
	}
)

// keywordScan counts keyword matches across every summary of every
// interaction. A hit is one keyword appearing in one summary; repeated
// occurrences inside the same summary count once. Returns the distinct
// matched keywords in first-match order alongside the hit count.
func keywordScan(interactions []*entities.Interaction, keywords []string) (matched []string, hits int) {
	seen := make(map[string]bool, len(keywords))
	matched = make([]string, 0)

	for _, interaction := range interactions {
		for i := range interaction.Summaries {
			text := strings.ToLower(interaction.Summaries[i].ScanText())
			if text == "" {
				continue
			}

			for _, keyword := range keywords {
				if !strings.Contains(text, keyword) {
					continue
				}
				hits++
				if !seen[keyword] {
					seen[keyword] = true
					matched = append(matched, keyword)
				}
			}
		}
	}

	return matched, hits
}

// DetectCompetitiveMentions scans summaries for competitor language.
// Risk = 15 per hit, capped at 100.
func DetectCompetitiveMentions(interactions []*entities.Interaction) entities.CompetitiveFactor {
	matched, hits := keywordScan(interactions, competitiveKeywords)

	riskScore := hits * 15
	if riskScore > 100 {
		riskScore = 100
	}

	return entities.CompetitiveFactor{
		Risk:         riskScore,
		Keywords:     matched,
		MentionCount: hits,
	}
}

// DetectBudgetConcerns scans summaries for cost and pricing language.
// Risk = 20 per distinct matched keyword, capped at 80.
func DetectBudgetConcerns(interactions []*entities.Interaction) entities.BudgetConcernsFactor {
	matched, _ := keywordScan(interactions, budgetKeywords)

	riskScore := len(matched) * 20
	if riskScore > 80 {
		riskScore = 80
	}

	return entities.BudgetConcernsFactor{
		Risk:     riskScore,
		Keywords: matched,
	}
}

// DetectMissingNextSteps inspects only the most recent interaction: a deal
// whose last meeting produced no action items has no agreed path forward.
// Zero interactions score 50, signaling insufficient data rather than a
// strict negative.
func DetectMissingNextSteps(interactions []*entities.Interaction) entities.MissingNextStepsFactor {
	if len(interactions) == 0 {
		return entities.MissingNextStepsFactor{Risk: 50, HasRecentActionItems: false}
	}

	sorted := make([]*entities.Interaction, len(interactions))
	copy(sorted, interactions)
	entities.SortInteractionsByRecency(sorted)

	latest := sorted[0]
	for i := range latest.Summaries {
		if latest.Summaries[i].HasActionItems() {
			return entities.MissingNextStepsFactor{Risk: 0, HasRecentActionItems: true}
		}
	}

	return entities.MissingNextStepsFactor{Risk: 70, HasRecentActionItems: false}
}
