package models

// Train represents a train and its remaining seats per travel class
type Train struct {
	TrainNumber string         `json:"trainNumber" yaml:"trainNumber"`
	Name        string         `json:"name" yaml:"name"`
	Seats       map[string]int `json:"seats" yaml:"seats"`
}

// Clone returns a copy of the train that shares no seat map with the original
func (t Train) Clone() Train {
	clone := t
	if t.Seats != nil {
		clone.Seats = make(map[string]int, len(t.Seats))
		for class, count := range t.Seats {
			clone.Seats[class] = count
		}
	}
	return clone
}

// SeatChart is the on-disk layout of a seat inventory file
type SeatChart struct {
	Trains []Train `json:"trains" yaml:"trains"`
}
