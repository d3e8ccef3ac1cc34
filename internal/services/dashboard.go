package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"facilities-system/internal/entities"
	"facilities-system/internal/repositories"
)

const dashboardSummaryCacheKey = "dashboard:summary"

type DashboardServiceInterface interface {
	GetSummary(ctx context.Context) (*entities.DashboardSummary, error)
}

// DashboardService serve o resumo do painel com cache de curta duração:
// os contadores toleram alguns minutos de defasagem.
type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	cacheRepo     repositories.CacheRepositoryInterface
	ttl           time.Duration
	logger        *zap.Logger
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	ttl time.Duration,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		cacheRepo:     cacheRepo,
		ttl:           ttl,
		logger:        logger,
	}
}

func (s *DashboardService) GetSummary(ctx context.Context) (*entities.DashboardSummary, error) {
	if cached, err := s.cacheRepo.Get(ctx, dashboardSummaryCacheKey); err == nil {
		var summary entities.DashboardSummary
		if err := json.Unmarshal(cached, &summary); err == nil {
			return &summary, nil
		}
		s.logger.Warn("cache do painel corrompido, recalculando")
	}

	summary, err := s.dashboardRepo.GetSummary(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(summary); err == nil {
		if err := s.cacheRepo.Set(ctx, dashboardSummaryCacheKey, encoded, s.ttl); err != nil {
			// Cache indisponível não impede a resposta.
			s.logger.Warn("falha ao gravar cache do painel", zap.Error(err))
		}
	}
	return summary, nil
}
