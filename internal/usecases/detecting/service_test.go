package detecting

import (
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func candidate(campaignID string, insightType domain.InsightType) *domain.Insight {
	campaign := campaignID
	return &domain.Insight{
		UserID:     1,
		AccountID:  "ACC001",
		CampaignID: &campaign,
		Type:       insightType,
		Priority:   domain.InsightPriorityCritical,
		Title:      "Budget overspend detected",
		Message:    "Campaign " + campaignID + " has spent 124% of budget today",
	}
}

func TestService_StoreInsights(t *testing.T) {
	now := time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		candidates []*domain.Insight
		setup      func(repo *mocks.MockInsightRepository)
		wantErr    string
	}{
		{
			name:       "Lista vazia é no-op",
			candidates: nil,
			setup:      func(repo *mocks.MockInsightRepository) {},
		},
		{
			name:       "Insight novo recebe ID e é persistido",
			candidates: []*domain.Insight{candidate("C1", domain.InsightTypeBudgetOverspend)},
			setup: func(repo *mocks.MockInsightRepository) {
				repo.EXPECT().
					GetLatestActiveByKey("ACC001", "C1", domain.InsightTypeBudgetOverspend).
					Return(nil, nil)

				repo.EXPECT().
					Insert(gomock.Any()).
					DoAndReturn(func(insight *domain.Insight) error {
						assert.NotEmpty(t, insight.ID)
						assert.False(t, insight.CreatedAt.IsZero())
						return nil
					})
			},
		},
		{
			name:       "Candidato suprimido por insight ativo na janela de cooldown",
			candidates: []*domain.Insight{candidate("C1", domain.InsightTypeBudgetOverspend)},
			setup: func(repo *mocks.MockInsightRepository) {
				existing := candidate("C1", domain.InsightTypeBudgetOverspend)
				existing.ID = "existing01"
				existing.CreatedAt = now.Add(-2 * time.Hour)

				repo.EXPECT().
					GetLatestActiveByKey("ACC001", "C1", domain.InsightTypeBudgetOverspend).
					Return(existing, nil)
				// Nenhum Insert esperado: o candidato é suprimido
			},
		},
		{
			name:       "Insight ativo de dias anteriores não suprime candidato novo",
			candidates: []*domain.Insight{candidate("C1", domain.InsightTypeBudgetOverspend)},
			setup: func(repo *mocks.MockInsightRepository) {
				existing := candidate("C1", domain.InsightTypeBudgetOverspend)
				existing.ID = "existing01"
				existing.CreatedAt = now.AddDate(0, 0, -2)

				repo.EXPECT().
					GetLatestActiveByKey("ACC001", "C1", domain.InsightTypeBudgetOverspend).
					Return(existing, nil)

				repo.EXPECT().
					Insert(gomock.Any()).
					Return(nil)
			},
		},
		{
			name:       "Violação de unicidade por writer concorrente é tratada como supressão",
			candidates: []*domain.Insight{candidate("C1", domain.InsightTypeBudgetOverspend)},
			setup: func(repo *mocks.MockInsightRepository) {
				repo.EXPECT().
					GetLatestActiveByKey("ACC001", "C1", domain.InsightTypeBudgetOverspend).
					Return(nil, nil)

				repo.EXPECT().
					Insert(gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
		},
		{
			name: "Falha de um candidato não impede a persistência dos demais",
			candidates: []*domain.Insight{
				candidate("C1", domain.InsightTypeBudgetOverspend),
				candidate("C2", domain.InsightTypeBudgetOverspend),
				candidate("C3", domain.InsightTypePerformanceAnomaly),
			},
			setup: func(repo *mocks.MockInsightRepository) {
				repo.EXPECT().
					GetLatestActiveByKey("ACC001", "C1", domain.InsightTypeBudgetOverspend).
					Return(nil, nil)
				repo.EXPECT().
					GetLatestActiveByKey("ACC001", "C2", domain.InsightTypeBudgetOverspend).
					Return(nil, fmt.Errorf("conexão perdida"))
				repo.EXPECT().
					GetLatestActiveByKey("ACC001", "C3", domain.InsightTypePerformanceAnomaly).
					Return(nil, nil)

				// Os outros dois candidatos seguem o fluxo normalmente
				repo.EXPECT().
					Insert(gomock.Any()).
					Return(nil).
					Times(2)
			},
			wantErr: "falha ao persistir 1 de 3 insights",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockInsightRepository(ctrl)
			tt.setup(mockRepo)

			service := &Service{
				detection:   testDetection(),
				insightRepo: mockRepo,
				now:         func() time.Time { return now },
			}

			err := service.StoreInsights(tt.candidates)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_DismissInsight(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(repo *mocks.MockInsightRepository)
		wantErr error
	}{
		{
			name: "Descarte bem-sucedido",
			setup: func(repo *mocks.MockInsightRepository) {
				repo.EXPECT().
					Dismiss("ins001", 1).
					Return(true, nil)
			},
		},
		{
			name: "Descartar insight já descartado é no-op",
			setup: func(repo *mocks.MockInsightRepository) {
				repo.EXPECT().
					Dismiss("ins001", 1).
					Return(false, nil)

				dismissed := candidate("C1", domain.InsightTypeBudgetOverspend)
				dismissed.ID = "ins001"
				dismissed.Dismissed = true

				repo.EXPECT().
					GetByID("ins001").
					Return(dismissed, nil)
			},
		},
		{
			name: "Insight inexistente retorna not found",
			setup: func(repo *mocks.MockInsightRepository) {
				repo.EXPECT().
					Dismiss("ins001", 1).
					Return(false, nil)

				repo.EXPECT().
					GetByID("ins001").
					Return(nil, nil)
			},
			wantErr: ErrInsightNotFound,
		},
		{
			name: "Insight de outro usuário retorna not found",
			setup: func(repo *mocks.MockInsightRepository) {
				repo.EXPECT().
					Dismiss("ins001", 1).
					Return(false, nil)

				other := candidate("C1", domain.InsightTypeBudgetOverspend)
				other.ID = "ins001"
				other.UserID = 99

				repo.EXPECT().
					GetByID("ins001").
					Return(other, nil)
			},
			wantErr: ErrInsightNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockInsightRepository(ctrl)
			tt.setup(mockRepo)

			service := &Service{
				detection:   testDetection(),
				insightRepo: mockRepo,
				now:         time.Now,
			}

			err := service.DismissInsight(1, "ins001")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_ListActiveInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockInsightRepository(ctrl)

	expected := []*domain.Insight{candidate("C1", domain.InsightTypeBudgetOverspend)}
	mockRepo.EXPECT().
		ListActiveByUser(1, uint64(10)).
		Return(expected, nil)

	service := &Service{
		detection:   testDetection(),
		insightRepo: mockRepo,
		now:         time.Now,
	}

	insights, err := service.ListActiveInsights(1, 10)
	assert.NoError(t, err)
	assert.Equal(t, expected, insights)
}
