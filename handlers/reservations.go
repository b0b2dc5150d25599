package handlers

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"train-reservation/models"
	"train-reservation/services"
)

// allocatePayload defers decoding so non-array fields can be treated as empty
type allocatePayload struct {
	Passengers json.RawMessage `json:"passengers"`
	Trains     json.RawMessage `json:"trains"`
}

// Allocate runs a one-off allocation over the passengers and trains in the request body
func Allocate(c *gin.Context) {
	var payload allocatePayload

	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req models.AllocateRequest
	if err := decodeList(payload.Passengers, &req.Passengers); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid passengers: " + err.Error()})
		return
	}
	if err := decodeList(payload.Trains, &req.Trains); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trains: " + err.Error()})
		return
	}

	log.Printf("Allocate request: %d passengers, %d trains", len(req.Passengers), len(req.Trains))

	results := services.Allocate(req.Passengers, req.Trains)

	trains := req.Trains
	if trains == nil {
		trains = []models.Train{}
	}

	c.JSON(http.StatusOK, models.AllocateResponse{
		Results: results,
		Summary: services.Summarize(results),
		Trains:  trains,
	})
}

// CreateReservations seats passengers from the shared seat inventory
func CreateReservations(c *gin.Context) {
	var req models.ReservationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("Reservation request: %d passengers", len(req.Passengers))

	batch := services.GetInventory().Reserve(req.Passengers)

	c.JSON(http.StatusOK, batch)
}

// decodeList decodes raw into dst only when it holds a JSON array.
// Anything else (missing, null, scalar, object) leaves dst empty.
func decodeList(raw json.RawMessage, dst interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil
	}
	return json.Unmarshal(trimmed, dst)
}
