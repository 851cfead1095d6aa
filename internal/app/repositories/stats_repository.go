package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academiahq/academia/internal/app/models/dto"
)

// StatsRepository handles the aggregate count queries for the admin dashboard
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetAdminStats returns the live student, staff and department counts in one
// round trip.
func (r *StatsRepository) GetAdminStats(ctx context.Context) (*dto.AdminStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE role = 'student') AS students,
			(SELECT COUNT(*) FROM users WHERE role = 'staff') AS staff,
			(SELECT COUNT(*) FROM departments) AS departments
	`

	var stats dto.AdminStats
	err := r.db.QueryRow(ctx, query).Scan(&stats.Students, &stats.Staff, &stats.Departments)
	if err != nil {
		return nil, fmt.Errorf("error fetching admin stats: %w", err)
	}

	return &stats, nil
}
