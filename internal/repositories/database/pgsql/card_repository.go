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

const cardColumns = `card_id, user_id, name, emoji, color, credit_limit, closing_day,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxCardRepository stores cards in the cartoes table.
type PgxCardRepository struct {
	BaseRepository
}

func newPgxCardRepository(pool *pgxpool.Pool) portsrepo.CardRepositoryFacade {
	return &PgxCardRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CardRepositoryFacade = (*PgxCardRepository)(nil)

func scanCard(row pgx.Row) (domain.Card, error) {
	var m models.Card
	err := row.Scan(
		&m.CardID,
		&m.UserID,
		&m.Name,
		&m.Emoji,
		&m.Color,
		&m.Limit,
		&m.ClosingDay,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Card{}, err
	}
	return mapping.ToDomainCard(m), nil
}

// SaveCard inserts a new card.
func (r *PgxCardRepository) SaveCard(ctx context.Context, card domain.Card) error {
	m := mapping.ToModelCard(card)
	query := `INSERT INTO cartoes (` + cardColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	_, err := r.Pool.Exec(ctx, query,
		m.CardID, m.UserID, m.Name, m.Emoji, m.Color, m.Limit, m.ClosingDay,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return wrapWriteError(err, "card", m.CardID)
	}
	return nil
}

// FindCardByID retrieves one card of the owner.
func (r *PgxCardRepository) FindCardByID(ctx context.Context, userID string, cardID string) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cartoes WHERE user_id = $1 AND card_id = $2;`

	card, err := scanCard(r.Pool.QueryRow(ctx, query, userID, cardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find card by ID %s: %w", cardID, err)
	}
	return &card, nil
}

// ListCards retrieves every card of the owner ordered by name.
func (r *PgxCardRepository) ListCards(ctx context.Context, userID string) ([]domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cartoes WHERE user_id = $1 ORDER BY name, card_id;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	cards := []domain.Card{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating card rows: %w", err)
	}
	return cards, nil
}

// UpdateCard overwrites a card's details.
func (r *PgxCardRepository) UpdateCard(ctx context.Context, card domain.Card) error {
	m := mapping.ToModelCard(card)
	query := `
		UPDATE cartoes SET name = $3, emoji = $4, color = $5, credit_limit = $6, closing_day = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE user_id = $1 AND card_id = $2;`

	tag, err := r.Pool.Exec(ctx, query,
		m.UserID, m.CardID, m.Name, m.Emoji, m.Color, m.Limit, m.ClosingDay,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update card %s: %w", m.CardID, err)
	}
	return expectOneRow(tag)
}

// DeleteCard removes the card. Items referencing it are not touched.
func (r *PgxCardRepository) DeleteCard(ctx context.Context, userID string, cardID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM cartoes WHERE user_id = $1 AND card_id = $2;`, userID, cardID)
	if err != nil {
		return fmt.Errorf("failed to delete card %s: %w", cardID, err)
	}
	return expectOneRow(tag)
}
