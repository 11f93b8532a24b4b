package model

import "time"

const (
	// SlotDuration длительность одного собеседования
	SlotDuration = time.Hour

	// BusinessOpenHour первый час, в который может начаться собеседование
	BusinessOpenHour = 9
	// BusinessCloseHour к этому часу собеседования заканчиваются
	BusinessCloseHour = 17
)

// BusinessLocation фиксированная зона Indochina Time (UTC+7).
// Используем FixedZone, чтобы не зависеть от tzdata в контейнере.
var BusinessLocation = time.FixedZone("ICT", 7*60*60)

// BusinessHours рабочее окно [OpenHour, CloseHour) в заданной зоне
type BusinessHours struct {
	Location  *time.Location
	OpenHour  int
	CloseHour int
}

// DefaultBusinessHours 09:00–17:00 ICT
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		Location:  BusinessLocation,
		OpenHour:  BusinessOpenHour,
		CloseHour: BusinessCloseHour,
	}
}

// Hours возвращает часы начала слотов по возрастанию: 9, 10, ..., 16
func (bh BusinessHours) Hours() []int {
	hours := make([]int, 0, bh.CloseHour-bh.OpenHour)
	for h := bh.OpenHour; h < bh.CloseHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// SlotsPerDay количество слотов в одном рабочем дне
func (bh BusinessHours) SlotsPerDay() int {
	return bh.CloseHour - bh.OpenHour
}

// SlotAt строит время начала слота: дата day (в зоне Location), час hour, минуты и секунды обнулены
func (bh BusinessHours) SlotAt(day time.Time, hour int) time.Time {
	d := day.In(bh.Location)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, bh.Location)
}

// NextDay полночь следующего дня относительно now в зоне Location
func (bh BusinessHours) NextDay(now time.Time) time.Time {
	n := now.In(bh.Location)
	return time.Date(n.Year(), n.Month(), n.Day()+1, 0, 0, 0, 0, bh.Location)
}

// Contains проверяет, что t это начало часа внутри рабочего окна
func (bh BusinessHours) Contains(t time.Time) bool {
	local := t.In(bh.Location)
	if local.Minute() != 0 || local.Second() != 0 || local.Nanosecond() != 0 {
		return false
	}
	return local.Hour() >= bh.OpenHour && local.Hour() < bh.CloseHour
}
