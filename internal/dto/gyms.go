package dto

import "time"

type CreateGymRequestDTO struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type GymResponseDTO struct {
	ID        int       `json:"id" example:"3"`
	OwnerID   int       `json:"owner_id" example:"7"`
	Name      string    `json:"name" example:"Iron Temple"`
	Balance   int       `json:"balance" example:"42"`
	CreatedAt time.Time `json:"created_at"`
}
