package queries

import (
	"context"
	"database/sql"
	"errors"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAccountQueryHandler serves the signed-in user's profile.
type GetAccountQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountQueryHandler creates a handler for profile reads.
func NewGetAccountQueryHandler(db *gorm.DB) GetAccountQueryHandler {
	return GetAccountQueryHandler{db: db}
}

// Handle fetches the profile row.
func (h GetAccountQueryHandler) Handle(
	ctx context.Context,
	query GetAccountQuery,
) (GetAccountQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAccountQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			full_name,
			role,
			status,
			business_name,
			phone,
			address,
			created_at
		FROM users
		WHERE id = ?
	`, query.UserID().String()).Row()

	var response GetAccountQueryResponse
	var id uuid.UUID

	err := row.Scan(
		&id,
		&response.Email,
		&response.FullName,
		&response.Role,
		&response.Status,
		&response.BusinessName,
		&response.Phone,
		&response.Address,
		&response.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetAccountQueryResponse{}, errs.NewObjectNotFoundError("user", query.UserID().String())
		}
		return GetAccountQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetAccountQueryResponse{}, err
	}

	return response, nil
}
