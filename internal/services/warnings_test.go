package services_test

import (
	"context"
	"testing"

	"github.com/pmcb87/earnings-tv/internal/models"
	"github.com/pmcb87/earnings-tv/internal/services"
)

func TestWarningCollector_BasicUsage(t *testing.T) {
	ctx, wc := services.NewWarningContext(context.Background())

	services.AddWarning(ctx, models.Warning{
		Code:    models.WarnLookupFailed,
		Message: "test warning 1",
	})
	services.AddWarning(ctx, models.Warning{
		Code:    models.WarnUnmappedExchange,
		Message: "test warning 2",
	})

	warnings := wc.GetWarnings()
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(warnings))
	}

	if warnings[0].Code != models.WarnLookupFailed {
		t.Errorf("expected code %s, got %s", models.WarnLookupFailed, warnings[0].Code)
	}
	if warnings[1].Code != models.WarnUnmappedExchange {
		t.Errorf("expected code %s, got %s", models.WarnUnmappedExchange, warnings[1].Code)
	}
}

func TestWarningCollector_NoCollectorNoPanic(t *testing.T) {
	// AddWarning with a plain context should not panic
	services.AddWarning(context.Background(), models.Warning{
		Code:    models.WarnWriteFailed,
		Message: "this should be silently dropped",
	})
}

func TestWarningCollector_EmptyByDefault(t *testing.T) {
	_, wc := services.NewWarningContext(context.Background())
	if warnings := wc.GetWarnings(); len(warnings) != 0 {
		t.Errorf("expected 0 warnings, got %d", len(warnings))
	}
}
