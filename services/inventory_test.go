package services

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"train-reservation/config"
	"train-reservation/models"
)

const yamlChart = `
trains:
  - trainNumber: "12345"
    name: Rajdhani Express
    seats:
      sleeper: 3
      ac3: 2
      ac2: 1
      ac1: 0
  - trainNumber: "12951"
    name: Mumbai Rajdhani
    seats:
      ac2: 4
`

func writeChart(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeatChart_YAML(t *testing.T) {
	trains, err := LoadSeatChart(writeChart(t, "chart.yaml", yamlChart))

	require.NoError(t, err)
	require.Len(t, trains, 2)
	assert.Equal(t, "12345", trains[0].TrainNumber)
	assert.Equal(t, "Rajdhani Express", trains[0].Name)
	assert.Equal(t, map[string]int{"sleeper": 3, "ac3": 2, "ac2": 1, "ac1": 0}, trains[0].Seats)
	assert.Equal(t, 4, trains[1].Seats["ac2"])
}

func TestLoadSeatChart_JSON(t *testing.T) {
	content := `{"trains":[{"trainNumber":"12345","name":"Rajdhani","seats":{"sleeper":5}}]}`

	trains, err := LoadSeatChart(writeChart(t, "chart.json", content))

	require.NoError(t, err)
	require.Len(t, trains, 1)
	assert.Equal(t, 5, trains[0].Seats["sleeper"])
}

func TestLoadSeatChart_Errors(t *testing.T) {
	_, err := LoadSeatChart(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadSeatChart(writeChart(t, "chart.txt", yamlChart))
	assert.Error(t, err)

	_, err = LoadSeatChart(writeChart(t, "broken.json", `{"trains": [`))
	assert.Error(t, err)
}

func TestInventory_ReservePersistsAcrossBatches(t *testing.T) {
	inv := NewInventory([]models.Train{
		{TrainNumber: "12345", Name: "Rajdhani", Seats: map[string]int{"ac2": 1, "sleeper": 1}},
	})
	passenger := models.Passenger{Name: "A", TrainNumber: "12345", Preferred: "ac2", Fallback: "sleeper"}

	first := inv.Reserve([]models.Passenger{passenger})
	second := inv.Reserve([]models.Passenger{passenger})
	third := inv.Reserve([]models.Passenger{passenger})

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "ac2", *first.Results[0].Class)
	assert.Equal(t, "sleeper", *second.Results[0].Class)
	assert.Equal(t, models.StatusWaitlisted, third.Results[0].Status)
	assert.Equal(t, models.ReservationSummary{Total: 1, Waitlisted: 1}, third.Summary)

	train, err := inv.Train("12345")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"ac2": 0, "sleeper": 0}, train.Seats)
}

func TestInventory_SnapshotsAreCopies(t *testing.T) {
	source := []models.Train{
		{TrainNumber: "12345", Seats: map[string]int{"sleeper": 2}},
	}
	inv := NewInventory(source)

	source[0].Seats["sleeper"] = 100
	snapshot := inv.Trains()
	snapshot[0].Seats["sleeper"] = 50
	single, err := inv.Train("12345")
	require.NoError(t, err)
	single.Seats["sleeper"] = 25

	assert.Equal(t, 2, inv.Trains()[0].Seats["sleeper"])
}

func TestInventory_TrainNotFound(t *testing.T) {
	inv := NewInventory(nil)

	_, err := inv.Train("99999")

	assert.ErrorIs(t, err, ErrTrainNotFound)
	assert.Empty(t, inv.Trains())
	assert.Empty(t, inv.Reserve([]models.Passenger{{Name: "A", TrainNumber: "99999"}}).Results)
}

func TestInventory_ConcurrentReserveNeverOversells(t *testing.T) {
	inv := NewInventory([]models.Train{
		{TrainNumber: "12345", Seats: map[string]int{"sleeper": 10}},
	})

	var wg sync.WaitGroup
	var mu sync.Mutex
	confirmed := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			batch := inv.Reserve([]models.Passenger{{Name: "P", TrainNumber: "12345", Preferred: "sleeper"}})
			mu.Lock()
			confirmed += batch.Summary.Confirmed
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, confirmed)
	assert.Equal(t, 0, inv.Trains()[0].Seats["sleeper"])
}

func TestInitInventory(t *testing.T) {
	defer SetInventory(GetInventory())

	require.NoError(t, InitInventory(&config.Config{}))
	assert.Empty(t, GetInventory().Trains())

	require.NoError(t, InitInventory(&config.Config{SeatChartPath: writeChart(t, "chart.yml", yamlChart)}))
	assert.Len(t, GetInventory().Trains(), 2)

	assert.Error(t, InitInventory(&config.Config{SeatChartPath: "/nonexistent/chart.yaml"}))
}
