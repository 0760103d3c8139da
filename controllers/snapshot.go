package controllers

import (
	"fmt"
	"time"

	"DayflowGo/config"
	"DayflowGo/models"
)

// loadSnapshot fetches one consistent (user, date) view: the day's tasks and
// events, plus the user's time blocks and recurring rules. The planning
// services run on this snapshot and never touch the database themselves.
func loadSnapshot(userID, date string) (models.Snapshot, error) {
	snapshot := models.Snapshot{UserID: userID, Date: date}

	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return snapshot, fmt.Errorf("invalid date %q: %w", date, err)
	}

	if err := config.DB.
		Where("user_id = ? AND due_date = ?", userID, date).
		Find(&snapshot.Tasks).Error; err != nil {
		return snapshot, err
	}
	if err := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Find(&snapshot.Events).Error; err != nil {
		return snapshot, err
	}
	if err := config.DB.
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&snapshot.TimeBlocks).Error; err != nil {
		return snapshot, err
	}
	if err := config.DB.
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&snapshot.RecurringRules).Error; err != nil {
		return snapshot, err
	}
	return snapshot, nil
}

// nextDate returns the day after a "YYYY-MM-DD" date.
func nextDate(date string) (string, error) {
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, 1).Format(models.DateLayout), nil
}
