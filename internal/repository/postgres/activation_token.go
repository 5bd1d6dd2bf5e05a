package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/videoflix-server/internal/model"
)

var _ model.ActivationTokenStore = (*ActivationTokenRepository)(nil)

type ActivationTokenRepository struct {
	db *Connection
}

func NewActivationTokenRepository(db *Connection) *ActivationTokenRepository {
	return &ActivationTokenRepository{
		db: db,
	}
}

// GetOrCreate returns the outstanding token of the account, creating one if absent.
// An existing token keeps its original creation time.
func (r *ActivationTokenRepository) GetOrCreate(ctx context.Context, accountID int64) (model.ActivationToken, error) {
	query := `INSERT INTO activation_tokens (account_id) VALUES ($1)
			  ON CONFLICT (account_id) DO UPDATE SET account_id = EXCLUDED.account_id
			  RETURNING account_id, created_at`

	var token model.ActivationToken
	err := r.db.QueryRow(ctx, query, accountID).Scan(&token.AccountID, &token.CreatedAt)
	if err != nil {
		return model.ActivationToken{}, fmt.Errorf("failed to get or create activation token: %w", err)
	}

	return token, nil
}

// Delete removes the token and reports whether a row was deleted. Of two
// concurrent calls only one sees true.
func (r *ActivationTokenRepository) Delete(ctx context.Context, accountID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM activation_tokens WHERE account_id = $1`, accountID)
	if err != nil {
		return false, fmt.Errorf("failed to delete activation token: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
