package cache

import (
	"fmt"

	"github.com/google/uuid"
)

// AssessmentKey is the cache key for the current risk assessment of a deal
func AssessmentKey(dealID uuid.UUID) string {
	return fmt.Sprintf("risk:assessment:%s", dealID)
}
