package repository

//go:generate mockgen -source=scan.go -destination=mocks/scan.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/app-store-api/infrastructure/database/postgres"
	"github.com/vfg2006/app-store-api/internal/domain"
)

const scansTable = "virus_scans"

var scanColumns = []string{
	"id", "listing_id", "file_url", "analysis_id", "status", "verdict",
	"malicious", "suspicious", "harmless", "requested_by", "created_at", "updated_at",
}

type ScanRepository interface {
	Create(ctx context.Context, scan *domain.VirusScan) error
	GetByID(ctx context.Context, id string) (*domain.VirusScan, error)
	ListPending(ctx context.Context, limit uint64) ([]*domain.VirusScan, error)
	UpdateResult(ctx context.Context, scan *domain.VirusScan) error
	Totals(ctx context.Context) (*domain.ScanTotals, error)
}

type scanRepository struct {
	conn *postgres.Connection
}

func NewScanRepository(conn *postgres.Connection) ScanRepository {
	return &scanRepository{
		conn: conn,
	}
}

func (r *scanRepository) Create(ctx context.Context, scan *domain.VirusScan) error {
	query, args, err := squirrel.
		Insert(scansTable).
		Columns("id", "listing_id", "file_url", "analysis_id", "status", "verdict", "requested_by").
		Values(scan.ID, scan.ListingID, scan.FileURL, scan.AnalysisID, scan.Status, scan.Verdict, scan.RequestedBy).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&scan.CreatedAt, &scan.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao registrar verificação: %w", err)
	}

	return nil
}

func scanVirusScan(row rowScanner) (*domain.VirusScan, error) {
	var (
		scan      domain.VirusScan
		listingID sql.NullString
	)

	err := row.Scan(
		&scan.ID,
		&listingID,
		&scan.FileURL,
		&scan.AnalysisID,
		&scan.Status,
		&scan.Verdict,
		&scan.Malicious,
		&scan.Suspicious,
		&scan.Harmless,
		&scan.RequestedBy,
		&scan.CreatedAt,
		&scan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if listingID.Valid {
		scan.ListingID = &listingID.String
	}

	return &scan, nil
}

func (r *scanRepository) GetByID(ctx context.Context, id string) (*domain.VirusScan, error) {
	query, args, err := squirrel.
		Select(scanColumns...).
		From(scansTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	scan, err := scanVirusScan(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar verificação %s: %w", id, err)
	}

	return scan, nil
}

// ListPending retorna as verificações mais antigas que ainda aguardam resultado
func (r *scanRepository) ListPending(ctx context.Context, limit uint64) ([]*domain.VirusScan, error) {
	query, args, err := squirrel.
		Select(scanColumns...).
		From(scansTable).
		Where(squirrel.Eq{"status": domain.ScanStatusQueued}).
		OrderBy("created_at ASC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar verificações pendentes: %w", err)
	}
	defer rows.Close()

	scans := make([]*domain.VirusScan, 0)
	for rows.Next() {
		scan, err := scanVirusScan(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		scans = append(scans, scan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return scans, nil
}

func (r *scanRepository) UpdateResult(ctx context.Context, scan *domain.VirusScan) error {
	query, args, err := squirrel.
		Update(scansTable).
		Set("status", scan.Status).
		Set("verdict", scan.Verdict).
		Set("malicious", scan.Malicious).
		Set("suspicious", scan.Suspicious).
		Set("harmless", scan.Harmless).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": scan.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar verificação %s: %w", scan.ID, err)
	}

	return nil
}

func (r *scanRepository) Totals(ctx context.Context) (*domain.ScanTotals, error) {
	var totals domain.ScanTotals
	err := r.conn.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE verdict = 'clean'),
			COUNT(*) FILTER (WHERE verdict = 'malicious')
		FROM virus_scans`,
	).Scan(&totals.Total, &totals.Clean, &totals.Malicious)
	if err != nil {
		return nil, fmt.Errorf("erro ao totalizar verificações: %w", err)
	}

	return &totals, nil
}
