package util

import (
	"time"

	"github.com/pmcb87/earnings-tv/internal/models"
	log "github.com/sirupsen/logrus"
)

// GetWeeks returns the Monday-Friday span of the ISO week containing input,
// followed by the span of the week after it.
// Dates are computed in input's own location.
func GetWeeks(input time.Time) []models.Week {
	day := time.Date(input.Year(), input.Month(), input.Day(), 0, 0, 0, 0, input.Location())

	// time.Weekday starts at Sunday; shift so Monday = 0
	offset := (int(day.Weekday()) + 6) % 7
	startOfWeek := day.AddDate(0, 0, -offset)
	startOfNextWeek := startOfWeek.AddDate(0, 0, 7)

	weeks := []models.Week{
		workWeek(startOfWeek),
		workWeek(startOfNextWeek),
	}

	log.Infof("Weeks: %v", weeks)
	return weeks
}

func workWeek(monday time.Time) models.Week {
	return models.Week{
		Start: monday.Format(models.DateLayout),
		End:   monday.AddDate(0, 0, 4).Format(models.DateLayout),
	}
}
