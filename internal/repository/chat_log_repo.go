package repository

import (
	"context"

	"github.com/vytal-health/DashboardBack/internal/models"
)

// ChatLogRepository records assistant exchanges so the conversation history
// survives restarts. Suggestions are stored as a text array.
type ChatLogRepository struct {
	db DBTX
}

func NewChatLogRepository(db DBTX) *ChatLogRepository {
	return &ChatLogRepository{db: db}
}

func (r *ChatLogRepository) Create(ctx context.Context, exchange *models.ChatExchange) error {
	query := `
		INSERT INTO chat_exchanges (id, user_id, message, topic, reply, suggestions)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	return r.db.QueryRow(ctx, query,
		exchange.ID,
		exchange.UserID,
		exchange.Message,
		exchange.Topic,
		exchange.Reply,
		exchange.Suggestions,
	).Scan(&exchange.CreatedAt)
}

func (r *ChatLogRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.ChatExchange, int, error) {
	countQuery := `SELECT COUNT(*) FROM chat_exchanges WHERE user_id = $1`
	var total int
	if err := r.db.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, user_id, message, topic, reply, suggestions, created_at
		FROM chat_exchanges
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	exchanges := make([]models.ChatExchange, 0, limit)
	for rows.Next() {
		var exchange models.ChatExchange
		if err := rows.Scan(
			&exchange.ID,
			&exchange.UserID,
			&exchange.Message,
			&exchange.Topic,
			&exchange.Reply,
			&exchange.Suggestions,
			&exchange.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		exchanges = append(exchanges, exchange)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return exchanges, total, nil
}

func (r *ChatLogRepository) DeleteByUser(ctx context.Context, userID int64) error {
	query := `DELETE FROM chat_exchanges WHERE user_id = $1`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}
