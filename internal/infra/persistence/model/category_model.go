package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table. Label uniqueness is enforced
// application-side by an exact-match precheck, not by a DB constraint, so the
// check stays case-sensitive regardless of collation.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Label     string    `gorm:"type:varchar(100);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Dishes []*DishModel `gorm:"many2many:dish_categories"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
