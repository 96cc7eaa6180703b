package dbmodels

import (
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/v5"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/utils"
)

type DbRole struct {
	Id          uuid.UUID   `db:"id"`
	Name        string      `db:"name"`
	Description null.String `db:"description"`
	CreatedAt   time.Time   `db:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"`
}

const TABLE_ROLES = "roles"

var SelectRoleColumns = utils.ColumnList[DbRole]()

func AdaptRole(db DbRole) (models.Role, error) {
	return models.Role{
		Id:          db.Id,
		Name:        db.Name,
		Description: db.Description.Ptr(),
		CreatedAt:   db.CreatedAt,
		UpdatedAt:   db.UpdatedAt,
	}, nil
}
