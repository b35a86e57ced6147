package mapping

import (
	"database/sql"

	"github.com/snapshare/snapshare-api/internal/core/domain"
	"github.com/snapshare/snapshare-api/internal/models"
)

// ToModelUser converts a domain User to a model User.
func ToModelUser(d domain.User) models.User {
	return models.User{
		ID:                 d.ID,
		Username:           d.Username,
		Email:              d.Email,
		PasswordHash:       d.PasswordHash,
		Avatar:             d.Avatar,
		Role:               string(d.Role),
		Confirmed:          d.Confirmed,
		Banned:             d.Banned,
		RefreshToken:       nullString(d.RefreshToken),
		ResetPasswordToken: nullString(d.ResetPasswordToken),
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainUser converts a model User to a domain User.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		ID:                 m.ID,
		Username:           m.Username,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		Avatar:             m.Avatar,
		Role:               domain.Role(m.Role),
		Confirmed:          m.Confirmed,
		Banned:             m.Banned,
		RefreshToken:       m.RefreshToken.String,
		ResetPasswordToken: m.ResetPasswordToken.String,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
