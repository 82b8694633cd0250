package database

import (
	"fmt"

	"eccli/models"
)

func StoreSubmission(submission *models.Submission) error {
	if DB == nil {
		return ErrUnavailable
	}
	return DB.Create(submission).Error
}

func GetSubmissions(year, day int) ([]*models.Submission, error) {
	if DB == nil {
		return nil, ErrUnavailable
	}
	var submissions []*models.Submission
	err := DB.
		Where(&models.Submission{Year: year, Day: day}).
		Order("created_at").
		Find(&submissions).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}
	return submissions, nil
}

func GetYearSubmissions(year int) ([]*models.Submission, error) {
	if DB == nil {
		return nil, ErrUnavailable
	}
	var submissions []*models.Submission
	err := DB.
		Where(&models.Submission{Year: year}).
		Order("day, part, created_at").
		Find(&submissions).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}
	return submissions, nil
}
