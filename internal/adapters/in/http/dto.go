package http

import (
	"time"

	"cargo/internal/core/application/usecases/queries"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Created struct {
	ID int64 `json:"id"`
}

type Amount struct {
	Amount int64 `json:"amount"`
}

type Balance struct {
	Balance int64 `json:"balance"`
}

type Acceptance struct {
	OrderID int64 `json:"order_id"`
	Fee     int64 `json:"fee"`
	Balance int64 `json:"balance"`
}

type Review struct {
	CarrierID int64  `json:"carrier_id"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount,omitempty"`
	Balance   int64  `json:"balance,omitempty"`
}

type AccountStatus struct {
	Status string `json:"status"`
}

type NewOrder struct {
	CreatorRole string `json:"creator_role"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Cargo       string `json:"cargo"`
	Weight      string `json:"weight"`
	Vehicle     string `json:"vehicle"`
	PickupDate  string `json:"pickup_date"`
	Username    string `json:"username"`
	Phone       string `json:"phone"`
}

type NewCarrier struct {
	FullName string `json:"full_name"`
	Vehicle  string `json:"vehicle"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
}

type NewRequester struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
}

type NewProof struct {
	Artifact string `json:"artifact"`
}

type ProofCreated struct {
	ID string `json:"id"`
}

type ReviewRequest struct {
	Decision string `json:"decision"`
	Amount   int64  `json:"amount"`
}

type BroadcastRequest struct {
	Audience string `json:"audience"`
	Text     string `json:"text"`
}

type BroadcastReport struct {
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
}

type Order struct {
	ID              int64     `json:"id"`
	RequesterID     int64     `json:"requester_id"`
	CreatorRole     string    `json:"creator_role"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	Cargo           string    `json:"cargo"`
	WeightKg        string    `json:"weight_kg"`
	Vehicle         string    `json:"vehicle"`
	PickupDate      string    `json:"pickup_date,omitempty"`
	ContactUsername string    `json:"contact_username,omitempty"`
	ContactPhone    string    `json:"contact_phone"`
	CreatedAt       time.Time `json:"created_at"`
	Fee             *int64    `json:"fee"`
	Status          string    `json:"status"`
	CarrierID       *int64    `json:"carrier_id"`
}

type Carrier struct {
	ID              int64     `json:"id"`
	FullName        string    `json:"full_name"`
	Vehicle         string    `json:"vehicle,omitempty"`
	ContactUsername string    `json:"contact_username,omitempty"`
	ContactPhone    string    `json:"contact_phone"`
	Balance         int64     `json:"balance"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type Requester struct {
	ID              int64     `json:"id"`
	FullName        string    `json:"full_name"`
	ContactUsername string    `json:"contact_username,omitempty"`
	ContactPhone    string    `json:"contact_phone"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type Proof struct {
	ID          string    `json:"id"`
	CarrierID   int64     `json:"carrier_id"`
	CarrierName string    `json:"carrier_name,omitempty"`
	Artifact    string    `json:"artifact"`
	CreatedAt   time.Time `json:"created_at"`
}

func toOrder(v queries.OrderView) Order {
	return Order{
		ID:              v.ID,
		RequesterID:     v.RequesterID,
		CreatorRole:     v.CreatorRole,
		Origin:          v.Origin,
		Destination:     v.Destination,
		Cargo:           v.Cargo,
		WeightKg:        v.WeightKg.String(),
		Vehicle:         v.Vehicle,
		PickupDate:      v.PickupDate,
		ContactUsername: v.ContactUsername,
		ContactPhone:    v.ContactPhone,
		CreatedAt:       v.CreatedAt,
		Fee:             v.Fee,
		Status:          v.Status,
		CarrierID:       v.CarrierID,
	}
}

func toCarrier(v queries.CarrierView) Carrier {
	return Carrier(v)
}

func toRequester(v queries.RequesterView) Requester {
	return Requester(v)
}

func toProof(v queries.ProofView) Proof {
	return Proof(v)
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}
