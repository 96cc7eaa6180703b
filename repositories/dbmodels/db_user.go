package dbmodels

import (
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/v5"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/utils"
)

type DbUser struct {
	Id            uuid.UUID `db:"id"`
	Username      string    `db:"username"`
	Email         string    `db:"email"`
	PasswordHash  string    `db:"password_hash"`
	IsGlobalAdmin bool      `db:"is_global_admin"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	LastLogin     null.Time `db:"last_login"`
}

const TABLE_USERS = "users"

var SelectUserColumns = utils.ColumnList[DbUser]()

func AdaptUser(db DbUser) (models.User, error) {
	return models.User{
		Id:            db.Id,
		Username:      db.Username,
		Email:         db.Email,
		PasswordHash:  db.PasswordHash,
		IsGlobalAdmin: db.IsGlobalAdmin,
		IsActive:      db.IsActive,
		CreatedAt:     db.CreatedAt,
		UpdatedAt:     db.UpdatedAt,
		LastLogin:     db.LastLogin.Ptr(),
	}, nil
}
