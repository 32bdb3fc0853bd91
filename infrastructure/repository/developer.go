package repository

//go:generate mockgen -source=developer.go -destination=mocks/developer.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/app-store-api/infrastructure/database/postgres"
	"github.com/vfg2006/app-store-api/internal/domain"
)

const developersTable = "developers"

var developerColumns = []string{
	"id", "user_id", "developer_name", "bio", "website", "id_document_key", "id_document_url", "status", "created_at", "updated_at",
}

type DeveloperRepository interface {
	Create(ctx context.Context, developer *domain.Developer) error
	GetByID(ctx context.Context, id string) (*domain.Developer, error)
	List(ctx context.Context) ([]*domain.Developer, error)
	UpdateStatus(ctx context.Context, id string, status domain.DeveloperStatus) error
}

type developerRepository struct {
	conn *postgres.Connection
}

func NewDeveloperRepository(conn *postgres.Connection) DeveloperRepository {
	return &developerRepository{
		conn: conn,
	}
}

func (r *developerRepository) Create(ctx context.Context, developer *domain.Developer) error {
	query, args, err := squirrel.
		Insert(developersTable).
		Columns("id", "user_id", "developer_name", "bio", "website", "id_document_key", "id_document_url", "status").
		Values(developer.ID, developer.UserID, developer.DeveloperName, developer.Bio, developer.Website,
			developer.IDDocumentKey, developer.IDDocumentURL, developer.Status).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&developer.CreatedAt, &developer.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao cadastrar desenvolvedor: %w", err)
	}

	return nil
}

func scanDeveloper(row rowScanner) (*domain.Developer, error) {
	var developer domain.Developer
	err := row.Scan(
		&developer.ID,
		&developer.UserID,
		&developer.DeveloperName,
		&developer.Bio,
		&developer.Website,
		&developer.IDDocumentKey,
		&developer.IDDocumentURL,
		&developer.Status,
		&developer.CreatedAt,
		&developer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &developer, nil
}

func (r *developerRepository) GetByID(ctx context.Context, id string) (*domain.Developer, error) {
	query, args, err := squirrel.
		Select(developerColumns...).
		From(developersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	developer, err := scanDeveloper(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar desenvolvedor %s: %w", id, err)
	}

	return developer, nil
}

func (r *developerRepository) List(ctx context.Context) ([]*domain.Developer, error) {
	query, args, err := squirrel.
		Select(developerColumns...).
		From(developersTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar desenvolvedores: %w", err)
	}
	defer rows.Close()

	developers := make([]*domain.Developer, 0)
	for rows.Next() {
		developer, err := scanDeveloper(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		developers = append(developers, developer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return developers, nil
}

// UpdateStatus altera a situação do cadastro. Na aprovação o usuário dono do
// cadastro passa a ter perfil de desenvolvedor, na mesma transação.
func (r *developerRepository) UpdateStatus(ctx context.Context, id string, status domain.DeveloperStatus) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var userID int
		err := tx.QueryRowContext(ctx,
			"UPDATE developers SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING user_id",
			status, id,
		).Scan(&userID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("erro ao atualizar desenvolvedor %s: %w", id, err)
		}

		if status != domain.DeveloperStatusApproved {
			return nil
		}

		_, err = tx.ExecContext(ctx,
			"UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2 AND role = $3",
			domain.RoleDeveloper, userID, domain.RoleUser,
		)
		if err != nil {
			return fmt.Errorf("erro ao promover usuário %d a desenvolvedor: %w", userID, err)
		}

		return nil
	})
}
