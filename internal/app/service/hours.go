package service

import (
	"regexp"

	"github.com/jteo/listify-backend/internal/app/model"
)

// Weekdays is the fixed day order used by the hours step.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// timePattern validates a strict 24-hour HH:MM clock value.
var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidTime reports whether s is a valid HH:MM time.
func ValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// WeeklyHours carries the fourteen flat time fields of the hours form,
// each HH:MM.
type WeeklyHours struct {
	MondayOpeningTime    string `json:"MondayOpeningTime" binding:"required"`
	MondayClosingTime    string `json:"MondayClosingTime" binding:"required"`
	TuesdayOpeningTime   string `json:"TuesdayOpeningTime" binding:"required"`
	TuesdayClosingTime   string `json:"TuesdayClosingTime" binding:"required"`
	WednesdayOpeningTime string `json:"WednesdayOpeningTime" binding:"required"`
	WednesdayClosingTime string `json:"WednesdayClosingTime" binding:"required"`
	ThursdayOpeningTime  string `json:"ThursdayOpeningTime" binding:"required"`
	ThursdayClosingTime  string `json:"ThursdayClosingTime" binding:"required"`
	FridayOpeningTime    string `json:"FridayOpeningTime" binding:"required"`
	FridayClosingTime    string `json:"FridayClosingTime" binding:"required"`
	SaturdayOpeningTime  string `json:"SaturdayOpeningTime" binding:"required"`
	SaturdayClosingTime  string `json:"SaturdayClosingTime" binding:"required"`
	SundayOpeningTime    string `json:"SundayOpeningTime" binding:"required"`
	SundayClosingTime    string `json:"SundayClosingTime" binding:"required"`
}

func (w *WeeklyHours) fields() map[string]*string {
	return map[string]*string{
		"Monday/open":     &w.MondayOpeningTime,
		"Monday/close":    &w.MondayClosingTime,
		"Tuesday/open":    &w.TuesdayOpeningTime,
		"Tuesday/close":   &w.TuesdayClosingTime,
		"Wednesday/open":  &w.WednesdayOpeningTime,
		"Wednesday/close": &w.WednesdayClosingTime,
		"Thursday/open":   &w.ThursdayOpeningTime,
		"Thursday/close":  &w.ThursdayClosingTime,
		"Friday/open":     &w.FridayOpeningTime,
		"Friday/close":    &w.FridayClosingTime,
		"Saturday/open":   &w.SaturdayOpeningTime,
		"Saturday/close":  &w.SaturdayClosingTime,
		"Sunday/open":     &w.SundayOpeningTime,
		"Sunday/close":    &w.SundayClosingTime,
	}
}

func (w *WeeklyHours) times(day string) (open, close *string) {
	switch day {
	case "Monday":
		return &w.MondayOpeningTime, &w.MondayClosingTime
	case "Tuesday":
		return &w.TuesdayOpeningTime, &w.TuesdayClosingTime
	case "Wednesday":
		return &w.WednesdayOpeningTime, &w.WednesdayClosingTime
	case "Thursday":
		return &w.ThursdayOpeningTime, &w.ThursdayClosingTime
	case "Friday":
		return &w.FridayOpeningTime, &w.FridayClosingTime
	case "Saturday":
		return &w.SaturdayOpeningTime, &w.SaturdayClosingTime
	case "Sunday":
		return &w.SundayOpeningTime, &w.SundayClosingTime
	}
	return nil, nil
}

// Validate checks all fourteen times against the HH:MM pattern and
// returns per-field messages keyed like "Monday/open".
func (w *WeeklyHours) Validate() map[string]string {
	invalid := map[string]string{}
	for name, value := range w.fields() {
		if !ValidTime(*value) {
			invalid[name] = "must be a 24-hour HH:MM time"
		}
	}
	if len(invalid) == 0 {
		return nil
	}
	return invalid
}

// UnflattenDays reshapes the fourteen flat fields into the ordered
// per-day collection, appending the seconds component. Inverse of
// FlattenDays.
func UnflattenDays(w *WeeklyHours) []model.DayHours {
	days := make([]model.DayHours, 0, len(Weekdays))
	for _, day := range Weekdays {
		open, close := w.times(day)
		days = append(days, model.DayHours{
			DayName:   day,
			OpenTime:  *open + ":00",
			CloseTime: *close + ":00",
		})
	}
	return days
}

// FlattenDays reshapes the per-day collection back into flat HH:MM
// fields for form defaults, stripping the seconds component. Inverse of
// UnflattenDays; days absent from the collection stay empty.
func FlattenDays(days []model.DayHours) *WeeklyHours {
	w := &WeeklyHours{}
	for _, day := range days {
		open, close := w.times(day.DayName)
		if open == nil {
			continue
		}
		*open = stripSeconds(day.OpenTime)
		*close = stripSeconds(day.CloseTime)
	}
	return w
}

func stripSeconds(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
