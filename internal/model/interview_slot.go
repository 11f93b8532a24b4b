package model

import "time"

// InterviewSlot забронированный часовой слот собеседования
type InterviewSlot struct {
	ID                int64     `json:"id"`
	CandidateIdentity string    `json:"candidate_identity"` // email кандидата
	StartTime         time.Time `json:"start_time"`         // всегда в BusinessLocation, ровно час
	CreatedAt         time.Time `json:"created_at"`
}

// EndTime возвращает время окончания собеседования
func (s *InterviewSlot) EndTime() time.Time {
	return s.StartTime.Add(SlotDuration)
}

// InterviewConfirmation данные, которые передаются в нотификатор после бронирования
type InterviewConfirmation struct {
	Slot        *InterviewSlot `json:"slot"`
	Role        string         `json:"role"`
	MeetingLink string         `json:"meeting_link"`
	Passcode    string         `json:"passcode"`
}
