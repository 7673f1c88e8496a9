package classify

import (
	"context"
	"fmt"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/dealinsight-dev/deal-insight/internal/domain/entities"
	usecaseErrors "github.com/dealinsight-dev/deal-insight/internal/usecase/errors"
)

// CompletionClient is the LLM transport used for classification.
// *ai.GroqClient satisfies it.
type CompletionClient interface {
	GenerateCompletion(ctx context.Context, prompt string) (string, error)
}

// LLMClassifier classifies stakeholder roles by prompting an LLM with
// the deal's roster
type LLMClassifier struct {
	client CompletionClient
	parser *Parser
	logger *zap.Logger
}

// NewLLMClassifier creates a new LLM-backed role classifier
func NewLLMClassifier(client CompletionClient, logger *zap.Logger) *LLMClassifier {
	return &LLMClassifier{
		client: client,
		parser: NewParser(),
		logger: logger,
	}
}

// ClassifyRoles prompts the LLM with the roster and parses the verdicts
func (c *LLMClassifier) ClassifyRoles(ctx context.Context, roster []entities.ParticipantProfile) ([]entities.RoleAssignment, error) {
	if len(roster) == 0 {
		return []entities.RoleAssignment{}, nil
	}

	prompt := buildClassificationPrompt(roster)

	// Retry logic with exponential backoff. Rate limits and transient
	// network failures are common with LLM providers.
	var content string
	completeFn := func() error {
		var err error
		content, err = c.client.GenerateCompletion(ctx, prompt)
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxElapsedTime = 30 * time.Second
	bo.MaxInterval = 10 * time.Second

	if err := backoff.Retry(completeFn, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrClassificationUnavailable, err)
	}

	assignments, err := c.parser.ParseRoleAssignments(content, roster)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("classifier.llm.classified",
		zap.Int("roster_size", len(roster)),
		zap.Int("assignments", len(assignments)),
	)

	return assignments, nil
}

// buildClassificationPrompt renders the roster into the classification
// prompt. The model must answer with strict JSON.
func buildClassificationPrompt(roster []entities.ParticipantProfile) string {
	var b strings.Builder

	b.WriteString("You are analyzing the buying committee of a B2B sales opportunity.\n")
	b.WriteString("Assign each participant exactly one role from this list:\n")
	b.WriteString("Economic Buyer, Decision Maker, Technical Champion, End User, Influencer, Participant.\n")
	b.WriteString("Also grade each participant's engagement as low, medium or high\n")
	b.WriteString("based on how often they attended and how much they spoke.\n\n")
	b.WriteString("Participants:\n")

	for _, p := range roster {
		b.WriteString(fmt.Sprintf("- name: %s", p.Name))
		if p.Email != nil && *p.Email != "" {
			b.WriteString(fmt.Sprintf(", email: %s", *p.Email))
		}
		if p.Role != nil && *p.Role != "" {
			b.WriteString(fmt.Sprintf(", title: %s", *p.Role))
		}
		b.WriteString(fmt.Sprintf(", meetings attended: %d, talk time: %ds\n",
			p.InteractionCount, p.TalkTimeSeconds))
	}

	b.WriteString("\nReturn ONLY a JSON object with this exact shape, no prose:\n")
	b.WriteString(`{"assignments":[{"name":"...","email":"...","role":"...","engagement_level":"..."}]}`)

	return b.String()
}
