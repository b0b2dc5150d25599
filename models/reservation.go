package models

import "time"

// Status is the outcome of a single passenger's reservation
type Status string

const (
	StatusConfirmed     Status = "confirmed"
	StatusWaitlisted    Status = "waitlisted"
	StatusTrainNotFound Status = "train_not_found"
)

// Passenger represents a reservation request for one traveller
type Passenger struct {
	Name        string `json:"name" yaml:"name"`
	TrainNumber string `json:"trainNumber" yaml:"trainNumber"`
	Preferred   string `json:"preferred" yaml:"preferred"`
	Fallback    string `json:"fallback" yaml:"fallback"`
}

// ReservationResult is the outcome for one passenger.
// Class is nil when the train could not be found.
type ReservationResult struct {
	Name        string  `json:"name"`
	TrainNumber string  `json:"trainNumber"`
	Class       *string `json:"class"`
	Status      Status  `json:"status"`
}

// ReservationSummary counts results by status
type ReservationSummary struct {
	Total         int `json:"total"`
	Confirmed     int `json:"confirmed"`
	Waitlisted    int `json:"waitlisted"`
	TrainNotFound int `json:"train_not_found"`
}

// ReservationBatch is a set of results allocated against the seat inventory
type ReservationBatch struct {
	ID        string              `json:"id"`
	CreatedAt time.Time           `json:"created_at"`
	Results   []ReservationResult `json:"results"`
	Summary   ReservationSummary  `json:"summary"`
}

// AllocateRequest carries both passengers and trains for a one-off allocation
type AllocateRequest struct {
	Passengers []Passenger `json:"passengers"`
	Trains     []Train     `json:"trains"`
}

// AllocateResponse returns results along with the trains' remaining seats
type AllocateResponse struct {
	Results []ReservationResult `json:"results"`
	Summary ReservationSummary  `json:"summary"`
	Trains  []Train             `json:"trains"`
}

// ReservationRequest represents passengers to be seated from the inventory
type ReservationRequest struct {
	Passengers []Passenger `json:"passengers"`
}
