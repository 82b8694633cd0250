package models

import "fmt"

const (
	MinYear = 2024
	MaxYear = 2030
	MinDay  = 1
	MaxDay  = 20
	MinPart = 1
	MaxPart = 3
)

// Quest identifies a single daily puzzle. Part is zero for operations
// that address the whole day (descriptions, status).
type Quest struct {
	Year int
	Day  int
	Part int
}

func (q Quest) String() string {
	if q.Part > 0 {
		return fmt.Sprintf("%d/%d part %d", q.Year, q.Day, q.Part)
	}
	return fmt.Sprintf("%d/%d", q.Year, q.Day)
}

func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("invalid year: %d (must be between %d-%d)", year, MinYear, MaxYear)
	}
	return nil
}

func ValidateDay(day int) error {
	if day < MinDay || day > MaxDay {
		return fmt.Errorf("invalid day: %d (must be %d-%d)", day, MinDay, MaxDay)
	}
	return nil
}

func ValidatePart(part int) error {
	if part < MinPart || part > MaxPart {
		return fmt.Errorf("invalid part: %d (must be %d-%d)", part, MinPart, MaxPart)
	}
	return nil
}

// Validate checks the full quest coordinate, skipping the part check
// when the quest addresses a whole day.
func (q Quest) Validate() error {
	if err := ValidateYear(q.Year); err != nil {
		return err
	}
	if err := ValidateDay(q.Day); err != nil {
		return err
	}
	if q.Part != 0 {
		return ValidatePart(q.Part)
	}
	return nil
}
