package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshActiveStatusDeactivation(t *testing.T) {
	now := time.Date(2019, time.April, 9, 14, 30, 0, 0, time.UTC)
	today := time.Date(2019, time.April, 9, 0, 0, 0, 0, time.UTC)

	activated := today.AddDate(0, -1, 0)
	customer := Customer{Active: false, DateActivated: &activated}

	customer.RefreshActiveStatus(now)

	assert.Nil(t, customer.DateActivated)
	require.NotNil(t, customer.DateDeactivated)
	assert.Equal(t, today, *customer.DateDeactivated)
}

func TestRefreshActiveStatusReactivation(t *testing.T) {
	now := time.Date(2019, time.April, 9, 14, 30, 0, 0, time.UTC)
	today := time.Date(2019, time.April, 9, 0, 0, 0, 0, time.UTC)

	deactivated := today.AddDate(0, 0, -7)
	customer := Customer{Active: true, DateDeactivated: &deactivated}

	customer.RefreshActiveStatus(now)

	require.NotNil(t, customer.DateActivated)
	assert.Equal(t, today, *customer.DateActivated)
	assert.Nil(t, customer.DateDeactivated)
}

// Saving an active customer re-stamps date_activated even when already set.
// Carried over verbatim from the legacy behaviour; flagged for product
// clarification in DESIGN.md.
func TestRefreshActiveStatusActiveSaveRestampsDate(t *testing.T) {
	now := time.Date(2019, time.April, 9, 14, 30, 0, 0, time.UTC)
	today := time.Date(2019, time.April, 9, 0, 0, 0, 0, time.UTC)

	original := today.AddDate(0, -2, 0)
	customer := Customer{Active: true, DateActivated: &original}

	customer.RefreshActiveStatus(now)

	require.NotNil(t, customer.DateActivated)
	assert.Equal(t, today, *customer.DateActivated)
}

func TestRefreshActiveStatusDatesNeverBothSet(t *testing.T) {
	now := time.Now()
	customer := Customer{Active: true}

	customer.RefreshActiveStatus(now)
	assert.NotNil(t, customer.DateActivated)
	assert.Nil(t, customer.DateDeactivated)

	customer.Active = false
	customer.RefreshActiveStatus(now)
	assert.Nil(t, customer.DateActivated)
	assert.NotNil(t, customer.DateDeactivated)

	// A second save of a deactivated customer keeps the original stamp.
	stamped := *customer.DateDeactivated
	customer.RefreshActiveStatus(now.AddDate(0, 0, 3))
	assert.Nil(t, customer.DateActivated)
	assert.Equal(t, stamped, *customer.DateDeactivated)
}

func TestCustomerFullName(t *testing.T) {
	customer := Customer{FirstName: "John", LastName: "Doe"}
	assert.Equal(t, "John Doe", customer.FullName())
}
