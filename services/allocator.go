package services

import "train-reservation/models"

// Allocate seats passengers first-come-first-served. Each passenger gets
// their preferred class if it has seats left, otherwise their fallback
// class, otherwise they are waitlisted against the preferred class.
//
// Seat counts in trains are decremented in place, so later passengers
// (and the caller) see the reduced availability. A class missing from a
// train's seat map counts as zero seats. If either input is empty the
// result is empty.
func Allocate(passengers []models.Passenger, trains []models.Train) []models.ReservationResult {
	results := []models.ReservationResult{}
	if len(passengers) == 0 || len(trains) == 0 {
		return results
	}

	for _, passenger := range passengers {
		result := models.ReservationResult{
			Name:        passenger.Name,
			TrainNumber: passenger.TrainNumber,
		}

		train := findTrain(trains, passenger.TrainNumber)
		if train == nil {
			result.Status = models.StatusTrainNotFound
			results = append(results, result)
			continue
		}

		switch {
		case takeSeat(train.Seats, passenger.Preferred):
			result.Class = classPtr(passenger.Preferred)
			result.Status = models.StatusConfirmed
		case takeSeat(train.Seats, passenger.Fallback):
			result.Class = classPtr(passenger.Fallback)
			result.Status = models.StatusConfirmed
		default:
			// Waitlist entries always report the preferred class
			result.Class = classPtr(passenger.Preferred)
			result.Status = models.StatusWaitlisted
		}

		results = append(results, result)
	}

	return results
}

// Summarize counts reservation results by status
func Summarize(results []models.ReservationResult) models.ReservationSummary {
	summary := models.ReservationSummary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case models.StatusConfirmed:
			summary.Confirmed++
		case models.StatusWaitlisted:
			summary.Waitlisted++
		case models.StatusTrainNotFound:
			summary.TrainNotFound++
		}
	}
	return summary
}

// findTrain returns the first train with the given number
func findTrain(trains []models.Train, number string) *models.Train {
	for i := range trains {
		if trains[i].TrainNumber == number {
			return &trains[i]
		}
	}
	return nil
}

// takeSeat decrements the class count if a seat is available.
// A nil map or missing class reads as zero.
func takeSeat(seats map[string]int, class string) bool {
	if seats[class] <= 0 {
		return false
	}
	seats[class]--
	return true
}

func classPtr(class string) *string {
	return &class
}
