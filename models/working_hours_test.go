package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWorkingHours(t *testing.T) {
	wh := DefaultWorkingHours()

	assert.Len(t, wh, 7)
	for _, day := range Weekdays {
		schedule, ok := wh[day]
		assert.True(t, ok, "missing weekday %s", day)
		assert.False(t, schedule.Enabled)
		assert.Equal(t, [2]string{"09:00", "17:00"}, schedule.Hours)
	}
	assert.False(t, wh.HasEnabledDay())
}

func TestHasEnabledDay(t *testing.T) {
	wh := DefaultWorkingHours()
	wh["wednesday"] = DaySchedule{Enabled: true, Hours: [2]string{"10:00", "12:00"}}

	assert.True(t, wh.HasEnabledDay())
}

func TestWorkingHoursValueScan(t *testing.T) {
	wh := DefaultWorkingHours()
	wh["friday"] = DaySchedule{Enabled: true, Hours: [2]string{"08:00", "13:30"}}

	value, err := wh.Value()
	assert.NoError(t, err)

	var restored WorkingHours
	assert.NoError(t, restored.Scan(value))
	assert.Equal(t, wh, restored)

	// Drivers may hand back bytes instead of a string.
	var fromBytes WorkingHours
	assert.NoError(t, fromBytes.Scan([]byte(value.(string))))
	assert.Equal(t, wh, fromBytes)
}

func TestWorkingHoursScanNil(t *testing.T) {
	var wh WorkingHours
	assert.NoError(t, wh.Scan(nil))
	assert.Nil(t, wh)
}

func TestWorkingHoursScanUnsupportedType(t *testing.T) {
	var wh WorkingHours
	assert.Error(t, wh.Scan(42))
}

func TestWorkingHoursNilValue(t *testing.T) {
	var wh WorkingHours
	value, err := wh.Value()
	assert.NoError(t, err)
	assert.Nil(t, value)
}
