package dbmodels

import (
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/v5"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/utils"
)

type DbGroup struct {
	Id          uuid.UUID   `db:"id"`
	Name        string      `db:"name"`
	Description null.String `db:"description"`
	IsActive    bool        `db:"is_active"`
	CreatedAt   time.Time   `db:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"`
}

const TABLE_GROUPS = "user_groups"

var SelectGroupColumns = utils.ColumnList[DbGroup]()

func AdaptGroup(db DbGroup) (models.Group, error) {
	return models.Group{
		Id:          db.Id,
		Name:        db.Name,
		Description: db.Description.Ptr(),
		IsActive:    db.IsActive,
		CreatedAt:   db.CreatedAt,
		UpdatedAt:   db.UpdatedAt,
	}, nil
}
