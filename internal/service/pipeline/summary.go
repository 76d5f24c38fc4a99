package pipeline

import (
	"context"
	"fmt"

	"github.com/dealflowhq/dealflow-backend/internal/domain"
	"github.com/dealflowhq/dealflow-backend/pkg/ctxutil"
)

// Summary returns the number of deals in every pipeline stage. The map
// always covers the full stage enumeration: stages with no deals appear
// with count 0, so callers never special-case absent keys. The counts are
// recomputed from current state on every call.
func (s *Service) Summary(ctx context.Context) (map[domain.Stage]int, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	counts, err := s.deals.CountByStage(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline.Summary: %w", err)
	}

	summary := make(map[domain.Stage]int, len(domain.Stages()))
	for _, stage := range domain.Stages() {
		summary[stage] = counts[stage]
	}
	return summary, nil
}
