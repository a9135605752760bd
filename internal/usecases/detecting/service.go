package detecting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/repository"
	"github.com/vfg2006/marketing-copilot-api/internal/config"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
	"github.com/vfg2006/marketing-copilot-api/pkg/utils"
)

// ErrInsightNotFound é retornado ao descartar um insight inexistente
var ErrInsightNotFound = fmt.Errorf("insight não encontrado")

// Service implementa o núcleo de detecção e deduplicação de insights
type Service struct {
	detection   config.Detection
	insightRepo repository.InsightRepository
	now         func() time.Time
}

// NewService cria o serviço de insights. A configuração de detecção já deve
// ter sido validada na inicialização (config.Detection.Validate).
func NewService(cfg *config.Config, insightRepo repository.InsightRepository) (*Service, error) {
	if err := cfg.Detection.Validate(); err != nil {
		return nil, err
	}

	return &Service{
		detection:   cfg.Detection,
		insightRepo: insightRepo,
		now:         time.Now,
	}, nil
}

// StoreInsights persiste os candidatos aplicando a deduplicação por
// (conta, campanha, tipo). A persistência é best-effort por item: a falha de
// um candidato não impede o armazenamento dos demais.
func (s *Service) StoreInsights(candidates []*domain.Insight) error {
	if len(candidates) == 0 {
		return nil
	}

	failures := 0
	for _, candidate := range candidates {
		if err := s.storeInsight(candidate); err != nil {
			accountID, campaignID, insightType := candidate.DedupKey()
			logrus.WithFields(logrus.Fields{
				"account_id":  accountID,
				"campaign_id": campaignID,
				"type":        insightType,
				"error":       err.Error(),
			}).Error("Erro ao persistir insight, seguindo para o próximo candidato")
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("falha ao persistir %d de %d insights", failures, len(candidates))
	}

	return nil
}

func (s *Service) storeInsight(candidate *domain.Insight) error {
	accountID, campaignID, insightType := candidate.DedupKey()

	existing, err := s.insightRepo.GetLatestActiveByKey(accountID, campaignID, insightType)
	if err != nil {
		return err
	}

	if existing != nil && s.withinCooldown(existing.CreatedAt) {
		logrus.WithFields(logrus.Fields{
			"account_id":  accountID,
			"campaign_id": campaignID,
			"type":        insightType,
			"existing_id": existing.ID,
		}).Debug("Insight suprimido: já existe um ativo dentro da janela de cooldown")
		return nil
	}

	if candidate.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID do insight: %w", err)
		}
		candidate.ID = id
	}

	if candidate.CreatedAt.IsZero() {
		candidate.CreatedAt = s.now()
	}

	if err := s.insightRepo.Insert(candidate); err != nil {
		// Violação de unicidade significa que outro writer concorrente
		// inseriu o mesmo insight primeiro; tratamos como supressão
		if repository.IsUniqueViolation(err) {
			logrus.WithFields(logrus.Fields{
				"account_id":  accountID,
				"campaign_id": campaignID,
				"type":        insightType,
			}).Debug("Insight suprimido: inserido por um writer concorrente")
			return nil
		}
		return err
	}

	return nil
}

// withinCooldown verifica se um insight criado em createdAt ainda está dentro
// da janela de cooldown em relação a agora.
func (s *Service) withinCooldown(createdAt time.Time) bool {
	windowStart := s.detection.CooldownWindowStart(s.now())
	return !createdAt.Before(windowStart)
}

// ListActiveInsights lista os insights não descartados do usuário, mais
// recentes primeiro. limit igual a zero significa sem limite.
func (s *Service) ListActiveInsights(userID int, limit uint64) ([]*domain.Insight, error) {
	return s.insightRepo.ListActiveByUser(userID, limit)
}

// DismissInsight descarta um insight do usuário. A operação é unidirecional e
// idempotente: descartar de novo um insight já descartado é um no-op.
func (s *Service) DismissInsight(userID int, insightID string) error {
	dismissed, err := s.insightRepo.Dismiss(insightID, userID)
	if err != nil {
		return err
	}

	if dismissed {
		return nil
	}

	// Nenhuma linha afetada: ou o insight já estava descartado (no-op), ou
	// ele não existe para este usuário
	existing, err := s.insightRepo.GetByID(insightID)
	if err != nil {
		return err
	}

	if existing == nil || existing.UserID != userID {
		return ErrInsightNotFound
	}

	return nil
}
