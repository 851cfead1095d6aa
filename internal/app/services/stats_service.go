package services

import (
	"context"

	"github.com/academiahq/academia/internal/app/models/dto"
)

// StatsService exposes the admin dashboard counts
type StatsService interface {
	AdminStats(ctx context.Context) (*dto.AdminStats, error)
}

type statsRepository interface {
	GetAdminStats(ctx context.Context) (*dto.AdminStats, error)
}

type statsService struct {
	statsRepo statsRepository
}

// NewStatsService creates a new stats service instance
func NewStatsService(statsRepo statsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) AdminStats(ctx context.Context) (*dto.AdminStats, error) {
	return s.statsRepo.GetAdminStats(ctx)
}
