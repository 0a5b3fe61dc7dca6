package town

import (
	"fmt"
	"strings"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
)

// Shortfall is one unaffordable cost line of an upgrade attempt.
type Shortfall struct {
	Target    string `json:"target"`
	Required  int64  `json:"required"`
	Available int64  `json:"available"`
}

// InsufficientResourcesError reports every cost line a team cannot
// afford, so callers can show the full bill rather than the first
// missing item.
type InsufficientResourcesError struct {
	Shortfalls []Shortfall
}

func (e *InsufficientResourcesError) Error() string {
	parts := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		parts = append(parts, fmt.Sprintf("%s %d/%d", s.Target, s.Available, s.Required))
	}
	return fmt.Sprintf("%s: %s", domain.ErrMsgInsufficientResources, strings.Join(parts, ", "))
}

func (e *InsufficientResourcesError) Unwrap() error {
	return domain.ErrInsufficientResources
}
