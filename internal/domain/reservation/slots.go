package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidHours  = errors.New("end hour has to be greater than start hour")
	ErrInvalidWindow = errors.New("window has to be more than zero")
)

// SlotPlan describes the FREE slots created for a new flat: every day of
// the week that lies HorizonDays ahead, one slot per window between
// StartHour and EndHour (UTC).
type SlotPlan struct {
	StartHour     int
	EndHour       int
	WindowMinutes int
	HorizonDays   int
}

func DefaultSlotPlan() SlotPlan {
	return SlotPlan{
		StartHour:     10,
		EndHour:       20,
		WindowMinutes: 20,
		HorizonDays:   7,
	}
}

func (p SlotPlan) Validate() error {
	if p.EndHour < p.StartHour {
		return ErrInvalidHours
	}
	if p.WindowMinutes <= 0 {
		return ErrInvalidWindow
	}
	return nil
}

func (p SlotPlan) SlotsPerDay() int {
	return (p.EndHour - p.StartHour) * 60 / p.WindowMinutes
}

// SlotTimes returns the slot start instants for the target week, Monday first.
func (p SlotPlan) SlotTimes(now time.Time) ([]time.Time, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	target := now.UTC().AddDate(0, 0, p.HorizonDays)
	day := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	// ISO week: Monday is the first day.
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)

	window := time.Duration(p.WindowMinutes) * time.Minute
	perDay := p.SlotsPerDay()
	times := make([]time.Time, 0, 7*perDay)
	for d := 0; d < 7; d++ {
		start := monday.AddDate(0, 0, d).Add(time.Duration(p.StartHour) * time.Hour)
		for i := 0; i < perDay; i++ {
			times = append(times, start.Add(time.Duration(i)*window))
		}
	}
	return times, nil
}

// FreeSlots builds the FREE reservations for flatID.
func (p SlotPlan) FreeSlots(flatID uuid.UUID, now time.Time) ([]Reservation, error) {
	times, err := p.SlotTimes(now)
	if err != nil {
		return nil, err
	}
	slots := make([]Reservation, len(times))
	for i, t := range times {
		slots[i] = NewFreeSlot(flatID, t)
	}
	return slots, nil
}
