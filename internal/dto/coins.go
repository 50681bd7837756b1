package dto

import "time"

type PurchaseRequestDTO struct {
	Coins      int     `json:"coins" example:"10"`
	Amount     float64 `json:"amount" example:"8.99"`
	PaymentRef string  `json:"payment_ref" example:"2377225624"`
}

type PurchaseResponseDTO struct {
	Balance    int       `json:"balance" example:"13"`
	Coins      int       `json:"coins" example:"10"`
	Amount     float64   `json:"amount" example:"8.99"`
	PaymentRef string    `json:"payment_ref" example:"2377225624"`
	CreatedAt  time.Time `json:"created_at"`
}

type UseRequestDTO struct {
	GymID int `json:"gym_id" example:"3"`
}

type RedemptionResponseDTO struct {
	MemberID   int    `json:"member_id" example:"1"`
	MemberName string `json:"member_name" example:"Alice"`
	GymID      int    `json:"gym_id" example:"3"`
	Balance    int    `json:"balance" example:"12"`
}

type ScanRequestDTO struct {
	QR string `json:"qr"`
}

type ScanResponseDTO struct {
	Granted    bool   `json:"granted"`
	MemberName string `json:"member_name,omitempty" example:"Alice"`
	Balance    int    `json:"balance" example:"12"`
	Reason     string `json:"reason,omitempty" example:"already redeemed at this gym today"`
}

type TransactionDTO struct {
	ID        int       `json:"id"`
	GymID     *int      `json:"gym_id,omitempty"`
	Type      string    `json:"type" example:"usage"`
	Coins     int       `json:"coins" example:"1"`
	Status    string    `json:"status" example:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

type CoinPurchaseDTO struct {
	Coins      int       `json:"coins" example:"10"`
	Amount     float64   `json:"amount" example:"8.99"`
	PaymentRef string    `json:"payment_ref" example:"2377225624"`
	CreatedAt  time.Time `json:"created_at"`
}

type MemberHistoryResponseDTO struct {
	Balance      int               `json:"balance" example:"12"`
	Purchases    []CoinPurchaseDTO `json:"purchases"`
	Transactions []TransactionDTO  `json:"transactions"`
}

type GymHistoryResponseDTO struct {
	Balance       int              `json:"balance" example:"42"`
	Transactions  []TransactionDTO `json:"transactions"`
	MonthlyTotals map[string]int   `json:"monthly_totals"`
}

type QRResponseDTO struct {
	QRCode string `json:"qrCode"`
}
