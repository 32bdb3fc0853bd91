package repository

//go:generate mockgen -source=insight.go -destination=mocks/insight.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/app-store-api/infrastructure/database/postgres"
	"github.com/vfg2006/app-store-api/internal/domain"
)

const (
	adminInsightsTable  = "admin_ai_insights"
	securityEventsTable = "security_logs"
)

type InsightRepository interface {
	CreateSnapshot(ctx context.Context, insight *domain.AdminInsight) error
	GetLatestSnapshot(ctx context.Context) (*domain.AdminInsight, error)
	CreateSecurityEvent(ctx context.Context, event *domain.SecurityEvent) error
	ListSecurityEvents(ctx context.Context, limit uint64) ([]*domain.SecurityEvent, error)
}

type insightRepository struct {
	conn *postgres.Connection
}

func NewInsightRepository(conn *postgres.Connection) InsightRepository {
	return &insightRepository{
		conn: conn,
	}
}

func (r *insightRepository) CreateSnapshot(ctx context.Context, insight *domain.AdminInsight) error {
	query, args, err := squirrel.
		Insert(adminInsightsTable).
		Columns("total_apps", "total_scans", "scan_pass", "scan_fail").
		Values(insight.TotalApps, insight.TotalScans, insight.ScanPass, insight.ScanFail).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&insight.ID, &insight.CreatedAt); err != nil {
		return fmt.Errorf("erro ao salvar insight: %w", err)
	}

	return nil
}

func (r *insightRepository) GetLatestSnapshot(ctx context.Context) (*domain.AdminInsight, error) {
	query, args, err := squirrel.
		Select("id", "total_apps", "total_scans", "scan_pass", "scan_fail", "created_at").
		From(adminInsightsTable).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var insight domain.AdminInsight
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&insight.ID,
		&insight.TotalApps,
		&insight.TotalScans,
		&insight.ScanPass,
		&insight.ScanFail,
		&insight.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar insight: %w", err)
	}

	return &insight, nil
}

func (r *insightRepository) CreateSecurityEvent(ctx context.Context, event *domain.SecurityEvent) error {
	query, args, err := squirrel.
		Insert(securityEventsTable).
		Columns("virus_detected", "scan_id").
		Values(event.VirusDetected, event.ScanID).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&event.ID, &event.CreatedAt); err != nil {
		return fmt.Errorf("erro ao registrar evento de segurança: %w", err)
	}

	return nil
}

func (r *insightRepository) ListSecurityEvents(ctx context.Context, limit uint64) ([]*domain.SecurityEvent, error) {
	query, args, err := squirrel.
		Select("id", "virus_detected", "scan_id", "created_at").
		From(securityEventsTable).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar eventos de segurança: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.SecurityEvent, 0)
	for rows.Next() {
		var (
			event  domain.SecurityEvent
			scanID sql.NullString
		)
		if err := rows.Scan(&event.ID, &event.VirusDetected, &scanID, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		if scanID.Valid {
			event.ScanID = &scanID.String
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return events, nil
}
