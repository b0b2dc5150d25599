package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"train-reservation/config"
	"train-reservation/models"
)

// ErrTrainNotFound is returned when no train in the inventory has the requested number
var ErrTrainNotFound = errors.New("train not found")

var inventory *Inventory

// Inventory holds the seat chart shared by all reservation requests.
// Allocate itself is not safe for concurrent use, so every batch runs
// under the inventory lock.
type Inventory struct {
	mu     sync.Mutex
	trains []models.Train
}

// InitInventory loads the seat chart named in the configuration
func InitInventory(cfg *config.Config) error {
	if cfg.SeatChartPath == "" {
		inventory = NewInventory(nil)
		return nil
	}

	trains, err := LoadSeatChart(cfg.SeatChartPath)
	if err != nil {
		return err
	}

	inventory = NewInventory(trains)
	log.Printf("Seat inventory loaded: %d trains from %s", len(trains), cfg.SeatChartPath)
	return nil
}

// GetInventory returns the process-wide seat inventory
func GetInventory() *Inventory {
	return inventory
}

// SetInventory replaces the process-wide seat inventory
func SetInventory(inv *Inventory) {
	inventory = inv
}

// NewInventory creates an inventory from a copy of the given trains
func NewInventory(trains []models.Train) *Inventory {
	return &Inventory{trains: cloneTrains(trains)}
}

// LoadSeatChart reads a YAML or JSON seat chart file
func LoadSeatChart(path string) ([]models.Train, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading seat chart: %w", err)
	}

	var chart models.SeatChart
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &chart)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &chart)
	default:
		return nil, fmt.Errorf("unsupported seat chart format: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing seat chart %s: %w", path, err)
	}

	return chart.Trains, nil
}

// Reserve allocates seats for passengers against the inventory.
// Seats taken here stay taken for later batches.
func (inv *Inventory) Reserve(passengers []models.Passenger) *models.ReservationBatch {
	inv.mu.Lock()
	results := Allocate(passengers, inv.trains)
	inv.mu.Unlock()

	batch := &models.ReservationBatch{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Results:   results,
		Summary:   Summarize(results),
	}

	log.Printf("Reservation batch %s: %d confirmed, %d waitlisted, %d train not found",
		batch.ID, batch.Summary.Confirmed, batch.Summary.Waitlisted, batch.Summary.TrainNotFound)

	return batch
}

// Trains returns a snapshot of every train and its remaining seats
func (inv *Inventory) Trains() []models.Train {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return cloneTrains(inv.trains)
}

// Train returns a snapshot of the first train with the given number
func (inv *Inventory) Train(number string) (*models.Train, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	train := findTrain(inv.trains, number)
	if train == nil {
		return nil, fmt.Errorf("%w: %s", ErrTrainNotFound, number)
	}
	clone := train.Clone()
	return &clone, nil
}

func cloneTrains(trains []models.Train) []models.Train {
	clones := make([]models.Train, 0, len(trains))
	for _, t := range trains {
		clones = append(clones, t.Clone())
	}
	return clones
}
