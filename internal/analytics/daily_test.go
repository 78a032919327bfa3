package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BarkinBalci/funnel-analytics-service/internal/domain"
)

func dailyEvent(date, userID string, step domain.Step) domain.Event {
	return domain.Event{
		Date:    date,
		UserID:  userID,
		Variant: "control",
		Channel: "web",
		Segment: "new_user",
		Step:    step,
	}
}

func TestDailySeries_BucketsByDateAscending(t *testing.T) {
	table := domain.EventTable{
		dailyEvent("2025-06-02", "u3", domain.StepImpression),
		dailyEvent("2025-06-01", "u1", domain.StepImpression),
		dailyEvent("2025-06-01", "u2", domain.StepImpression),
		dailyEvent("2025-06-01", "u1", domain.StepClick),
	}

	rows := DailySeries(table)

	assert.Len(t, rows, 2)
	assert.Equal(t, "2025-06-01", rows[0].Date)
	assert.Equal(t, "2025-06-02", rows[1].Date)
	assert.Equal(t, 2, rows[0].Impressions)
	assert.Equal(t, 1, rows[0].Clicks)
}

func TestDailySeries_FillsMissingStepsWithZero(t *testing.T) {
	table := domain.EventTable{
		dailyEvent("2025-06-01", "u1", domain.StepImpression),
		dailyEvent("2025-06-02", "u2", domain.StepApprove),
	}

	rows := DailySeries(table)

	assert.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Impressions)
	assert.Equal(t, 0, rows[0].Clicks)
	assert.Equal(t, 0, rows[0].Applies)
	assert.Equal(t, 0, rows[0].Approves)
	// a date seen only at approve still carries all four columns
	assert.Equal(t, 0, rows[1].Impressions)
	assert.Equal(t, 1, rows[1].Approves)
}

func TestDailySeries_CountsDistinctUsersPerDay(t *testing.T) {
	table := domain.EventTable{
		dailyEvent("2025-06-01", "u1", domain.StepImpression),
		dailyEvent("2025-06-01", "u1", domain.StepImpression),
		dailyEvent("2025-06-02", "u1", domain.StepImpression),
	}

	rows := DailySeries(table)

	assert.Equal(t, 1, rows[0].Impressions)
	assert.Equal(t, 1, rows[1].Impressions)
}

func TestDailySeries_ApproveRate(t *testing.T) {
	table := domain.EventTable{
		dailyEvent("2025-06-01", "u1", domain.StepImpression),
		dailyEvent("2025-06-01", "u2", domain.StepImpression),
		dailyEvent("2025-06-01", "u1", domain.StepApprove),
		// a day with approves but no impressions must not divide by zero
		dailyEvent("2025-06-02", "u3", domain.StepApprove),
	}

	rows := DailySeries(table)

	assert.InDelta(t, 0.5, rows[0].ApproveRateOverImpression, 1e-9)
	assert.Equal(t, 0.0, rows[1].ApproveRateOverImpression)
}

func TestDailySeries_EmptyTable(t *testing.T) {
	rows := DailySeries(domain.EventTable{})

	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}
