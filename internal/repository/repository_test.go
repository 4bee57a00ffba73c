package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayWindow(t *testing.T) {
	from, to, err := DayWindow("2024-05-01")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 5, 1, 23, 59, 59, 999_000_000, time.UTC), to)
}

func TestDayWindowRejectsMalformedDates(t *testing.T) {
	for _, bad := range []string{"", "01-05-2024", "2024-5-1", "2024-05-01T10:00:00Z", "not a date"} {
		_, _, err := DayWindow(bad)
		assert.Error(t, err, "date %q", bad)
	}
}

func TestIsDuplicateEntry(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'trip-1-seat-2' for key 'uniq_trip_seat'"}
	assert.True(t, isDuplicateEntry(dup))
	assert.True(t, isDuplicateEntry(fmt.Errorf("insert bookings: %w", dup)))

	assert.False(t, isDuplicateEntry(&mysql.MySQLError{Number: 1452}))
	assert.False(t, isDuplicateEntry(errors.New("duplicate entry")))
	assert.False(t, isDuplicateEntry(nil))
}
