package repository

//go:generate mockgen -source=promotion.go -destination=mocks/promotion.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/app-store-api/infrastructure/database/postgres"
	"github.com/vfg2006/app-store-api/internal/domain"
)

const promotionsTable = "promotions"

var promotionColumns = []string{
	"id", "title", "type", "app_id", "media_url", "show_home", "show_search", "show_app_page", "is_active", "created_at",
}

type PromotionRepository interface {
	Create(ctx context.Context, campaign *domain.PromotionCampaign) error
	GetByID(ctx context.Context, id string) (*domain.PromotionCampaign, error)
	SetActive(ctx context.Context, id string, active bool) error
	ListActive(ctx context.Context, placement *domain.Placement) ([]*domain.PromotionCampaign, error)
	ListByApp(ctx context.Context, appID string) ([]*domain.PromotionCampaign, error)
}

type promotionRepository struct {
	conn *postgres.Connection
}

func NewPromotionRepository(conn *postgres.Connection) PromotionRepository {
	return &promotionRepository{
		conn: conn,
	}
}

var placementColumns = map[domain.Placement]string{
	domain.PlacementHome:    "show_home",
	domain.PlacementSearch:  "show_search",
	domain.PlacementAppPage: "show_app_page",
}

func (r *promotionRepository) Create(ctx context.Context, campaign *domain.PromotionCampaign) error {
	query, args, err := squirrel.
		Insert(promotionsTable).
		Columns("id", "title", "type", "app_id", "media_url", "show_home", "show_search", "show_app_page", "is_active").
		Values(campaign.ID, campaign.Title, campaign.Type, campaign.AppID, campaign.MediaURL,
			campaign.ShowHome, campaign.ShowSearch, campaign.ShowAppPage, campaign.IsActive).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&campaign.CreatedAt); err != nil {
		return fmt.Errorf("erro ao criar campanha: %w", err)
	}

	return nil
}

func scanCampaign(row rowScanner) (*domain.PromotionCampaign, error) {
	var (
		campaign domain.PromotionCampaign
		appID    sql.NullString
		mediaURL sql.NullString
	)

	err := row.Scan(
		&campaign.ID,
		&campaign.Title,
		&campaign.Type,
		&appID,
		&mediaURL,
		&campaign.ShowHome,
		&campaign.ShowSearch,
		&campaign.ShowAppPage,
		&campaign.IsActive,
		&campaign.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if appID.Valid {
		campaign.AppID = &appID.String
	}

	if mediaURL.Valid {
		campaign.MediaURL = &mediaURL.String
	}

	return &campaign, nil
}

func (r *promotionRepository) GetByID(ctx context.Context, id string) (*domain.PromotionCampaign, error) {
	query, args, err := squirrel.
		Select(promotionColumns...).
		From(promotionsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar campanha %s: %w", id, err)
	}

	return campaign, nil
}

func (r *promotionRepository) SetActive(ctx context.Context, id string, active bool) error {
	query, args, err := squirrel.
		Update(promotionsTable).
		Set("is_active", active).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar campanha %s: %w", id, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *promotionRepository) ListActive(ctx context.Context, placement *domain.Placement) ([]*domain.PromotionCampaign, error) {
	builder := squirrel.
		Select(promotionColumns...).
		From(promotionsTable).
		Where(squirrel.Eq{"is_active": true})

	if placement != nil {
		if column, ok := placementColumns[*placement]; ok {
			builder = builder.Where(squirrel.Eq{column: true})
		}
	}

	return r.query(ctx, builder.OrderBy("created_at DESC"))
}

func (r *promotionRepository) ListByApp(ctx context.Context, appID string) ([]*domain.PromotionCampaign, error) {
	builder := squirrel.
		Select(promotionColumns...).
		From(promotionsTable).
		Where(squirrel.Eq{"app_id": appID}).
		OrderBy("created_at DESC")

	return r.query(ctx, builder)
}

func (r *promotionRepository) query(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.PromotionCampaign, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar campanhas: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.PromotionCampaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return campaigns, nil
}
