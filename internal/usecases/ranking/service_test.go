package ranking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-store-api/infrastructure/repository/mocks"
	"github.com/vfg2006/app-store-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestStoreFeedService_GetStoreFeed(t *testing.T) {
	tests := []struct {
		name        string
		listings    []domain.Listing
		repoErr     error
		expectedIDs []string
		expectedErr error
	}{
		{
			name: "Vitrine ordenada com promoção vigente no topo",
			listings: []domain.Listing{
				organicListing("recente", true, t0.Add(-time.Hour)),
				promotedListing("destaque", 1, t0.Add(time.Hour), t0.Add(-72*time.Hour)),
				promotedListing("expirado", 9, t0, t0.Add(-30*time.Minute)),
			},
			expectedIDs: []string{"destaque", "expirado", "recente"},
		},
		{
			name:        "Erro do repositório",
			repoErr:     errors.New("conexão recusada"),
			expectedErr: errors.New("conexão recusada"),
		},
		{
			name: "Registros inválidos",
			listings: []domain.Listing{
				organicListing("dup", true, t0),
				organicListing("dup", true, t0),
			},
			expectedErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			listingRepo := mocks.NewMockListingRepository(ctrl)
			listingRepo.EXPECT().ListVisible(gomock.Any()).Return(tt.listings, tt.repoErr)

			service := NewStoreFeedService(listingRepo).(*StoreFeedService)
			service.now = func() time.Time { return t0 }

			feed, err := service.GetStoreFeed(context.Background())

			if tt.expectedErr != nil {
				require.Error(t, err)
				if errors.Is(tt.expectedErr, ErrInvalidInput) {
					assert.ErrorIs(t, err, ErrInvalidInput)
				} else {
					assert.EqualError(t, err, tt.expectedErr.Error())
				}
				return
			}

			require.NoError(t, err)

			ids := make([]string, 0, len(feed))
			for _, summary := range feed {
				ids = append(ids, summary.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)

			assert.True(t, feed[0].Promoted)
			assert.False(t, feed[1].Promoted, "promoção expirada deve aparecer como não promovida")
			assert.Nil(t, feed[1].PromotionRank)
		})
	}
}
