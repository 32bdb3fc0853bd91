package ranking

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/vfg2006/app-store-api/internal/domain"
)

var ErrInvalidInput = errors.New("listagem inválida para ordenação")

// Rank ordena os apps visíveis da vitrine.
//
// Apps com promoção vigente em now vêm primeiro, por rank decrescente; os demais
// vêm depois, publicados antes dos não publicados. Empates são resolvidos pela
// data de criação (mais recente primeiro) e depois pelo ID em ordem crescente.
// A entrada não é modificada.
func Rank(listings []domain.Listing, now time.Time) ([]domain.Listing, error) {
	if err := validate(listings); err != nil {
		return nil, err
	}

	promoted := make([]domain.Listing, 0, len(listings))
	others := make([]domain.Listing, 0, len(listings))

	for _, listing := range listings {
		if listing.IsActivelyPromoted(now) {
			promoted = append(promoted, listing)
			continue
		}
		others = append(others, listing)
	}

	slices.SortFunc(promoted, func(a, b domain.Listing) int {
		if c := cmp.Compare(rankOf(b), rankOf(a)); c != 0 {
			return c
		}
		return newestFirst(a, b)
	})

	slices.SortFunc(others, func(a, b domain.Listing) int {
		if a.Published != b.Published {
			if a.Published {
				return -1
			}
			return 1
		}
		return newestFirst(a, b)
	})

	return append(promoted, others...), nil
}

// rankOf trata promoção vigente sem rank como rank zero
func rankOf(l domain.Listing) int {
	if l.PromotionRank == nil {
		return 0
	}
	return *l.PromotionRank
}

func newestFirst(a, b domain.Listing) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func validate(listings []domain.Listing) error {
	seen := make(map[string]struct{}, len(listings))

	for i, listing := range listings {
		if listing.ID == "" {
			return fmt.Errorf("%w: item %d sem identificador", ErrInvalidInput, i)
		}

		if listing.CreatedAt.IsZero() {
			return fmt.Errorf("%w: app %s sem data de criação", ErrInvalidInput, listing.ID)
		}

		if _, ok := seen[listing.ID]; ok {
			return fmt.Errorf("%w: app %s duplicado", ErrInvalidInput, listing.ID)
		}
		seen[listing.ID] = struct{}{}
	}

	return nil
}
