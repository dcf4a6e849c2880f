package handler

import (
	"time"

	"potluck/internal/domain/entity"

	"github.com/google/uuid"
)

// userResponse is the wire shape of a user. The password hash never leaves
// the persistence layer boundary.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
}

type categoryResponse struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
}

type dishResponse struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	CreatedBy   *userResponse      `json:"created_by,omitempty"`
	Categories  []categoryResponse `json:"categories"`
	CreatedAt   time.Time          `json:"created_at"`
}

func toUserResponse(user *entity.User) *userResponse {
	if user == nil {
		return nil
	}

	return &userResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
		Email:     user.Email,
	}
}

func toCategoryResponses(categories []*entity.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, categoryResponse{ID: category.ID, Label: category.Label})
	}

	return out
}

func toDishResponse(dish *entity.Dish) *dishResponse {
	if dish == nil {
		return nil
	}

	return &dishResponse{
		ID:          dish.ID,
		Title:       dish.Title,
		Description: dish.Description,
		CreatedBy:   toUserResponse(dish.CreatedBy),
		Categories:  toCategoryResponses(dish.Categories),
		CreatedAt:   dish.CreatedAt,
	}
}

func toDishResponses(dishes []*entity.Dish) []*dishResponse {
	out := make([]*dishResponse, 0, len(dishes))
	for _, dish := range dishes {
		out = append(out, toDishResponse(dish))
	}

	return out
}
