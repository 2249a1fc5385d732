package service

import (
	"testing"

	"github.com/jteo/listify-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWeeklyHours() *WeeklyHours {
	w := &WeeklyHours{}
	for _, day := range Weekdays {
		open, close := w.times(day)
		*open = "09:00"
		*close = "18:00"
	}
	return w
}

func TestValidTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "13:05", "23:59"}
	for _, v := range valid {
		assert.True(t, ValidTime(v), v)
	}

	invalid := []string{"24:00", "9:00", "09:60", "09:00:00", "0900", "", "ab:cd"}
	for _, v := range invalid {
		assert.False(t, ValidTime(v), v)
	}
}

func TestWeeklyHours_Validate(t *testing.T) {
	w := validWeeklyHours()
	assert.Nil(t, w.Validate())

	w.MondayOpeningTime = "24:00"
	w.SundayClosingTime = "9:00"

	fields := w.Validate()
	require.Len(t, fields, 2)
	assert.Contains(t, fields, "Monday/open")
	assert.Contains(t, fields, "Sunday/close")
}

func TestUnflattenDays_OrderAndSeconds(t *testing.T) {
	w := validWeeklyHours()
	w.MondayOpeningTime = "08:30"

	days := UnflattenDays(w)
	require.Len(t, days, 7)

	assert.Equal(t, model.DayHours{DayName: "Monday", OpenTime: "08:30:00", CloseTime: "18:00:00"}, days[0])
	for i, day := range Weekdays {
		assert.Equal(t, day, days[i].DayName)
	}
}

func TestFlattenDays_RoundTrip(t *testing.T) {
	w := validWeeklyHours()
	w.FridayClosingTime = "22:15"

	got := FlattenDays(UnflattenDays(w))
	assert.Equal(t, w, got)
}

func TestFlattenDays_IgnoresUnknownDays(t *testing.T) {
	days := []model.DayHours{
		{DayName: "Monday", OpenTime: "09:00:00", CloseTime: "18:00:00"},
		{DayName: "Funday", OpenTime: "00:00:00", CloseTime: "00:00:00"},
	}

	w := FlattenDays(days)
	assert.Equal(t, "09:00", w.MondayOpeningTime)
	assert.Equal(t, "18:00", w.MondayClosingTime)
	assert.Empty(t, w.TuesdayOpeningTime)
}
