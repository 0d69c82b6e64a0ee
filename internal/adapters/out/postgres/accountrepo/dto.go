// Package accountrepo persists merchant and admin accounts. Emails are
// stored normalized (lowercase) and carry a unique index, which is the
// source of truth for the one-account-per-email rule.
package accountrepo

import (
	"time"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO is the database row for a user account aggregate.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(254);uniqueIndex"`
	PasswordHash string
	FullName     string
	Role         string `gorm:"type:varchar(16);index"`
	Status       string `gorm:"type:varchar(16)"`
	BusinessName string
	Phone        string
	Address      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *account.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		FullName:     aggregate.FullName(),
		Role:         aggregate.Role().String(),
		Status:       aggregate.Status().String(),
		BusinessName: aggregate.BusinessName(),
		Phone:        aggregate.Phone(),
		Address:      aggregate.Address(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	status, err := account.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(
		id, dto.Email, dto.PasswordHash, dto.FullName,
		role, status,
		dto.BusinessName, dto.Phone, dto.Address,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
