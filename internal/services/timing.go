package services

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// TrackTime logs how long funcName took. Use as: defer TrackTime("name", time.Now())
func TrackTime(funcName string, start time.Time) {
	elapsed := time.Since(start)
	log.Debugf("%s took %d ms", funcName, elapsed.Milliseconds())
}
