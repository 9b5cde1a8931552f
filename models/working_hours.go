package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Weekdays lists the seven weekday keys in display order.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// DaySchedule describes availability for a single weekday.
// The hours pair is kept even when the day is disabled.
type DaySchedule struct {
	Enabled bool      `json:"enabled"`
	Hours   [2]string `json:"hours"` // [start, end] as "HH:MM"
}

// WorkingHours maps weekday name to that day's schedule.
// A well-formed value always carries exactly 7 entries.
type WorkingHours map[string]DaySchedule

// DefaultWorkingHours returns a 7-day map with every day disabled
// and the default 09:00-17:00 hours pair in place.
func DefaultWorkingHours() WorkingHours {
	wh := make(WorkingHours, len(Weekdays))
	for _, day := range Weekdays {
		wh[day] = DaySchedule{Enabled: false, Hours: [2]string{"09:00", "17:00"}}
	}
	return wh
}

// HasEnabledDay reports whether at least one weekday is enabled.
func (wh WorkingHours) HasEnabledDay() bool {
	for _, day := range wh {
		if day.Enabled {
			return true
		}
	}
	return false
}

// Value serializes the map to a JSON blob for database storage.
func (wh WorkingHours) Value() (driver.Value, error) {
	if wh == nil {
		return nil, nil
	}
	data, err := json.Marshal(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize working hours: %w", err)
	}
	return string(data), nil
}

// Scan deserializes a JSON blob from the database.
func (wh *WorkingHours) Scan(value interface{}) error {
	if value == nil {
		*wh = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported working hours column type %T", value)
	}

	if len(data) == 0 {
		*wh = nil
		return nil
	}
	if err := json.Unmarshal(data, wh); err != nil {
		return fmt.Errorf("failed to deserialize working hours: %w", err)
	}
	return nil
}
