package handlers

import (
	"context"

	"github.com/Freeeeeet/interview_scheduler/internal/model"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// interviewWorkflow то, что нужно обработчикам от ApplicationService
type interviewWorkflow interface {
	ScheduleInterview(ctx context.Context, candidate, role string) (*model.InterviewConfirmation, error)
	UpcomingInterviews(ctx context.Context, days int) ([]*model.InterviewSlot, error)
}

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	workflow        interviewWorkflow
	recruiterChatID int64
	validate        *validator.Validate
	logger          *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(workflow interviewWorkflow, recruiterChatID int64, logger *zap.Logger) *Handlers {
	return &Handlers{
		workflow:        workflow,
		recruiterChatID: recruiterChatID,
		validate:        validator.New(),
		logger:          logger,
	}
}
