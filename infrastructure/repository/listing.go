package repository

//go:generate mockgen -source=listing.go -destination=mocks/listing.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/app-store-api/infrastructure/database/postgres"
	"github.com/vfg2006/app-store-api/internal/domain"
)

const listingsTable = "apps"

var ErrNotFound = errors.New("registro não encontrado")

var listingColumns = []string{
	"id", "developer_id", "name", "description", "category", "package_id", "version",
	"file_key", "file_url", "status", "rejection_reason", "published", "promoted",
	"promotion_expires_at", "promotion_rank", "ai_generated", "downloads", "created_at", "updated_at",
}

type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	ListVisible(ctx context.Context) ([]domain.Listing, error)
	List(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	ListLatest(ctx context.Context, limit uint64) ([]domain.Listing, error)
	Update(ctx context.Context, listing *domain.Listing) error
	SoftDelete(ctx context.Context, id string) error
	SetModeration(ctx context.Context, id string, status domain.ListingStatus, published bool, reason *string) error
	SetPublished(ctx context.Context, id string, published bool) error
	Promote(ctx context.Context, id string, expiresAt time.Time, rank int) error
	Unpromote(ctx context.Context, id string) error
	IncrementDownloads(ctx context.Context, id string) (string, error)
	FindByPackageID(ctx context.Context, packageID string) (*domain.Listing, error)
	FindByNameLike(ctx context.Context, name string) (*domain.Listing, error)
	Count(ctx context.Context) (int, error)
}

type listingRepository struct {
	conn *postgres.Connection
}

func NewListingRepository(conn *postgres.Connection) ListingRepository {
	return &listingRepository{
		conn: conn,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (*domain.Listing, error) {
	var (
		listing   domain.Listing
		reason    sql.NullString
		expiresAt sql.NullTime
		rank      sql.NullInt64
	)

	err := row.Scan(
		&listing.ID,
		&listing.OwnerID,
		&listing.Name,
		&listing.Description,
		&listing.Category,
		&listing.PackageID,
		&listing.Version,
		&listing.FileKey,
		&listing.FileURL,
		&listing.Status,
		&reason,
		&listing.Published,
		&listing.Promoted,
		&expiresAt,
		&rank,
		&listing.AIGenerated,
		&listing.Downloads,
		&listing.CreatedAt,
		&listing.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if reason.Valid {
		listing.RejectionReason = &reason.String
	}

	if expiresAt.Valid {
		t := expiresAt.Time
		listing.PromotionExpiresAt = &t
	}

	if rank.Valid {
		r := int(rank.Int64)
		listing.PromotionRank = &r
	}

	return &listing, nil
}

func (r *listingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	query, args, err := squirrel.
		Insert(listingsTable).
		Columns("id", "developer_id", "name", "description", "category", "package_id", "version",
			"file_key", "file_url", "status", "published", "promoted", "ai_generated", "downloads").
		Values(listing.ID, listing.OwnerID, listing.Name, listing.Description, listing.Category,
			listing.PackageID, listing.Version, listing.FileKey, listing.FileURL, listing.Status,
			listing.Published, listing.Promoted, listing.AIGenerated, listing.Downloads).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&listing.CreatedAt, &listing.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao inserir app: %w", err)
	}

	return nil
}

func (r *listingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query, args, err := squirrel.
		Select(listingColumns...).
		From(listingsTable).
		Where(squirrel.Eq{"id": id, "deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	listing, err := scanListing(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar app %s: %w", id, err)
	}

	return listing, nil
}

// ListVisible retorna os apps elegíveis para a vitrine pública, sem ordenação
func (r *listingRepository) ListVisible(ctx context.Context) ([]domain.Listing, error) {
	builder := squirrel.
		Select(listingColumns...).
		From(listingsTable).
		Where(squirrel.Eq{"deleted": false, "status": domain.ListingStatusApproved})

	return r.query(ctx, builder)
}

func (r *listingRepository) List(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	builder := squirrel.
		Select(listingColumns...).
		From(listingsTable).
		Where(squirrel.Eq{"deleted": false})

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}

	if filter.OwnerID != nil {
		builder = builder.Where(squirrel.Eq{"developer_id": *filter.OwnerID})
	}

	return r.query(ctx, builder.OrderBy("created_at DESC"))
}

func (r *listingRepository) ListLatest(ctx context.Context, limit uint64) ([]domain.Listing, error) {
	builder := squirrel.
		Select(listingColumns...).
		From(listingsTable).
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("created_at DESC").
		Limit(limit)

	return r.query(ctx, builder)
}

func (r *listingRepository) query(ctx context.Context, builder squirrel.SelectBuilder) ([]domain.Listing, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar apps: %w", err)
	}
	defer rows.Close()

	listings := make([]domain.Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		listings = append(listings, *listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return listings, nil
}

func (r *listingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	builder := squirrel.
		Update(listingsTable).
		Set("name", listing.Name).
		Set("description", listing.Description).
		Set("category", listing.Category).
		Set("version", listing.Version).
		Set("status", listing.Status).
		Set("published", listing.Published).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": listing.ID, "deleted": false})

	return r.exec(ctx, builder)
}

func (r *listingRepository) SoftDelete(ctx context.Context, id string) error {
	builder := squirrel.
		Update(listingsTable).
		Set("deleted", true).
		Set("published", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "deleted": false})

	return r.exec(ctx, builder)
}

func (r *listingRepository) SetModeration(ctx context.Context, id string, status domain.ListingStatus, published bool, reason *string) error {
	builder := squirrel.
		Update(listingsTable).
		Set("status", status).
		Set("published", published).
		Set("rejection_reason", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "deleted": false})

	return r.exec(ctx, builder)
}

func (r *listingRepository) SetPublished(ctx context.Context, id string, published bool) error {
	builder := squirrel.
		Update(listingsTable).
		Set("published", published).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "deleted": false})

	return r.exec(ctx, builder)
}

// Promote grava flag, expiração e rank em um único UPDATE
func (r *listingRepository) Promote(ctx context.Context, id string, expiresAt time.Time, rank int) error {
	builder := squirrel.
		Update(listingsTable).
		Set("promoted", true).
		Set("promotion_expires_at", expiresAt).
		Set("promotion_rank", rank).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "deleted": false})

	return r.exec(ctx, builder)
}

func (r *listingRepository) Unpromote(ctx context.Context, id string) error {
	builder := squirrel.
		Update(listingsTable).
		Set("promoted", false).
		Set("promotion_expires_at", nil).
		Set("promotion_rank", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "deleted": false})

	return r.exec(ctx, builder)
}

func (r *listingRepository) exec(ctx context.Context, builder squirrel.UpdateBuilder) error {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar app: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *listingRepository) IncrementDownloads(ctx context.Context, id string) (string, error) {
	query, args, err := squirrel.
		Update(listingsTable).
		Set("downloads", squirrel.Expr("downloads + 1")).
		Where(squirrel.Eq{"id": id, "deleted": false, "status": domain.ListingStatusApproved}).
		Suffix("RETURNING file_url").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var fileURL string
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&fileURL)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("erro ao registrar download: %w", err)
	}

	return fileURL, nil
}

func (r *listingRepository) FindByPackageID(ctx context.Context, packageID string) (*domain.Listing, error) {
	builder := squirrel.
		Select(listingColumns...).
		From(listingsTable).
		Where(squirrel.Eq{"package_id": packageID, "deleted": false}).
		Limit(1)

	return r.first(ctx, builder)
}

func (r *listingRepository) FindByNameLike(ctx context.Context, name string) (*domain.Listing, error) {
	builder := squirrel.
		Select(listingColumns...).
		From(listingsTable).
		Where(squirrel.ILike{"name": "%" + name + "%"}).
		Where(squirrel.Eq{"deleted": false}).
		Limit(1)

	return r.first(ctx, builder)
}

func (r *listingRepository) first(ctx context.Context, builder squirrel.SelectBuilder) (*domain.Listing, error) {
	listings, err := r.query(ctx, builder)
	if err != nil {
		return nil, err
	}

	if len(listings) == 0 {
		return nil, nil
	}

	return &listings[0], nil
}

func (r *listingRepository) Count(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(listingsTable).
		Where(squirrel.Eq{"deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar apps: %w", err)
	}

	return total, nil
}
