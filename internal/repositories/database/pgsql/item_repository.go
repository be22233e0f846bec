package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fintrack/internal/apperrors"
	"github.com/SscSPs/fintrack/internal/core/domain"
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	"github.com/SscSPs/fintrack/internal/models"
	"github.com/SscSPs/fintrack/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const itemColumns = `item_id, user_id, nature, kind, amount, card_id, first_installment_month, first_installment_year,
	installment_count, description, emoji, category, entry_date, created_at, created_by, last_updated_at, last_updated_by`

// PgxItemRepository stores line items in the itens table.
type PgxItemRepository struct {
	BaseRepository
}

func newPgxItemRepository(pool *pgxpool.Pool) portsrepo.LineItemRepositoryFacade {
	return &PgxItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LineItemRepositoryFacade = (*PgxItemRepository)(nil)

func scanItem(row pgx.Row) (domain.LineItem, error) {
	var m models.LineItem
	err := row.Scan(
		&m.ItemID,
		&m.UserID,
		&m.Nature,
		&m.Kind,
		&m.Amount,
		&m.CardID,
		&m.FirstInstallmentMonth,
		&m.FirstInstallmentYear,
		&m.InstallmentCount,
		&m.Description,
		&m.Emoji,
		&m.Category,
		&m.EntryDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.LineItem{}, err
	}
	return mapping.ToDomainItem(m), nil
}

func collectItems(rows pgx.Rows) ([]domain.LineItem, error) {
	defer rows.Close()
	items := []domain.LineItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}
	return items, nil
}

// SaveItem inserts a new item.
func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.LineItem) error {
	m := mapping.ToModelItem(item)
	query := `INSERT INTO itens (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`

	_, err := r.Pool.Exec(ctx, query,
		m.ItemID, m.UserID, m.Nature, m.Kind, m.Amount, m.CardID,
		m.FirstInstallmentMonth, m.FirstInstallmentYear, m.InstallmentCount,
		m.Description, m.Emoji, m.Category, m.EntryDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return wrapWriteError(err, "item", m.ItemID)
	}
	return nil
}

// FindItemByID retrieves one item of the owner.
func (r *PgxItemRepository) FindItemByID(ctx context.Context, userID string, itemID string) (*domain.LineItem, error) {
	query := `SELECT ` + itemColumns + ` FROM itens WHERE user_id = $1 AND item_id = $2;`

	item, err := scanItem(r.Pool.QueryRow(ctx, query, userID, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item by ID %s: %w", itemID, err)
	}
	return &item, nil
}

// ListItems retrieves every item of the owner, oldest first.
func (r *PgxItemRepository) ListItems(ctx context.Context, userID string) ([]domain.LineItem, error) {
	query := `SELECT ` + itemColumns + ` FROM itens WHERE user_id = $1 ORDER BY created_at, item_id;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	return collectItems(rows)
}

// ListItemsPage retrieves up to limit items after the cursor in (created_at, item_id) order.
func (r *PgxItemRepository) ListItemsPage(ctx context.Context, userID string, after *portsrepo.ItemCursor, limit int) ([]domain.LineItem, error) {
	if limit <= 0 {
		limit = 50
	}

	var (
		rows pgx.Rows
		err  error
	)
	if after == nil {
		query := `SELECT ` + itemColumns + ` FROM itens WHERE user_id = $1
			ORDER BY created_at, item_id LIMIT $2;`
		rows, err = r.Pool.Query(ctx, query, userID, limit)
	} else {
		query := `SELECT ` + itemColumns + ` FROM itens WHERE user_id = $1
			AND (created_at, item_id) > ($2, $3)
			ORDER BY created_at, item_id LIMIT $4;`
		rows, err = r.Pool.Query(ctx, query, userID, after.CreatedAt, after.ItemID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query item page: %w", err)
	}
	return collectItems(rows)
}

// UpdateItem overwrites every mutable column of an item.
func (r *PgxItemRepository) UpdateItem(ctx context.Context, item domain.LineItem) error {
	m := mapping.ToModelItem(item)
	query := `
		UPDATE itens SET nature = $3, kind = $4, amount = $5, card_id = $6,
			first_installment_month = $7, first_installment_year = $8, installment_count = $9,
			description = $10, emoji = $11, category = $12, entry_date = $13,
			last_updated_at = $14, last_updated_by = $15
		WHERE user_id = $1 AND item_id = $2;`

	tag, err := r.Pool.Exec(ctx, query,
		m.UserID, m.ItemID, m.Nature, m.Kind, m.Amount, m.CardID,
		m.FirstInstallmentMonth, m.FirstInstallmentYear, m.InstallmentCount,
		m.Description, m.Emoji, m.Category, m.EntryDate,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update item %s: %w", m.ItemID, err)
	}
	return expectOneRow(tag)
}

// DeleteItem removes an item of the owner.
func (r *PgxItemRepository) DeleteItem(ctx context.Context, userID string, itemID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM itens WHERE user_id = $1 AND item_id = $2;`, userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item %s: %w", itemID, err)
	}
	return expectOneRow(tag)
}
