package dto

import "time"

type GymBreakdownDTO struct {
	GymID   int    `json:"gym_id" example:"3"`
	Name    string `json:"name" example:"Iron Temple"`
	Balance int    `json:"balance" example:"42"`
}

type DashboardResponseDTO struct {
	TotalCoinsCirculating int               `json:"total_coins_circulating" example:"120"`
	TotalCoinsHeldByGyms  int               `json:"total_coins_held_by_gyms" example:"42"`
	PerGym                []GymBreakdownDTO `json:"per_gym"`
}

type PayoutRequestDTO struct {
	GymID  int     `json:"gym_id" example:"3"`
	Amount float64 `json:"amount" example:"21.00"`
	Coins  int     `json:"coins" example:"42"`
}

type PayoutResponseDTO struct {
	GymID        int       `json:"gym_id" example:"3"`
	CashAmount   float64   `json:"cash_amount" example:"21.00"`
	CoinsCleared int       `json:"coins_cleared" example:"42"`
	NewBalance   int       `json:"new_balance" example:"0"`
	CreatedAt    time.Time `json:"created_at"`
}
