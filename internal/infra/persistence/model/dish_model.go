package model

import (
	"time"

	"github.com/google/uuid"
)

// DishModel mirrors the 'dishes' table. The two many2many joins carry the
// dish-category labels and each user's personal "added" collection.
type DishModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	CreatedByUser *UserModel       `gorm:"foreignKey:CreatedByUserID"`
	Categories    []*CategoryModel `gorm:"many2many:dish_categories"`
	AddedUsers    []*UserModel     `gorm:"many2many:user_added_dishes"`
}

// TableName explicitly sets the table name for GORM.
func (DishModel) TableName() string {
	return "dishes"
}
