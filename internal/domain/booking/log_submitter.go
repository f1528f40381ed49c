package booking

import (
	"context"

	"go.uber.org/zap"
)

// LogSubmitter writes submissions to the log and always succeeds. It stands
// in for the event publisher when messaging is disabled.
type LogSubmitter struct {
	logger *zap.Logger
}

func NewLogSubmitter(logger *zap.Logger) *LogSubmitter {
	if logger == nil {
		logger = zap.L()
	}
	return &LogSubmitter{logger: logger.Named("booking")}
}

func (s *LogSubmitter) SubmitBooking(_ context.Context, req Request) error {
	s.logger.Info("booking submitted",
		zap.String("reference", req.Reference),
		zap.String("name", req.Name),
		zap.String("email", req.Email),
		zap.String("service_type", string(req.ServiceType)),
		zap.String("preferred_date", req.PreferredDate),
		zap.String("preferred_time", req.PreferredTime),
	)
	return nil
}

func (s *LogSubmitter) SubmitContact(_ context.Context, msg ContactMessage) error {
	s.logger.Info("contact message submitted",
		zap.String("reference", msg.Reference),
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.String("subject", msg.Subject),
	)
	return nil
}
