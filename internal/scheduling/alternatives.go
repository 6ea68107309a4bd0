package scheduling

import (
	"context"

	"github.com/skedra/marketplace-backend/internal/pkg/timeutil"
)

// searchDays is how many calendar days, starting at the requested date, the
// alternative search covers.
const searchDays = 7

const defaultMaxAlternatives = 5

// FindAlternatives walks providers in listing order and dates ascending,
// collecting available slots until the cap is reached. Only the exact
// (provider, date, time) that was originally requested is skipped; another
// provider free at the same time is a perfectly good alternative.
//
// Worst case is every provider times every day times every slot, so the
// search honors context cancellation and stops as soon as it has enough.
func (s *service) FindAlternatives(ctx context.Context, req AlternativesRequest) ([]Alternative, error) {
	offering, err := s.catService.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, ErrServiceNotFound
	}

	providers, err := s.provService.ListActiveByService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	limit := req.Max
	if limit < 1 {
		limit = defaultMaxAlternatives
	}
	origDate := timeutil.DateOf(req.Date)

	alternatives := make([]Alternative, 0, limit)
	for _, prov := range providers {
		for day := 0; day < searchDays; day++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			date := origDate.AddDate(0, 0, day)
			slots, err := s.generator.Generate(ctx, prov.ID, date, offering.DurationMinutes)
			if err != nil {
				return nil, err
			}

			for _, slot := range slots {
				if !slot.Available {
					continue
				}
				if prov.ID == req.ProviderID && date.Equal(origDate) && slot.StartMinute == req.StartMinute {
					continue
				}
				alternatives = append(alternatives, Alternative{
					ProviderID:   prov.ID,
					ProviderName: prov.Name,
					Date:         date,
					StartMinute:  slot.StartMinute,
				})
				if len(alternatives) >= limit {
					return alternatives, nil
				}
			}
		}
	}

	// No alternatives inside the window is an empty result, not an error.
	return alternatives, nil
}
