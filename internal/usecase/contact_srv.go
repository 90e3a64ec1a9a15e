package usecase

import (
	"context"

	"go.uber.org/zap"

	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/apperror"
	"hotel-booking/pkg/mailer"
	"hotel-booking/pkg/metrics"
	"hotel-booking/pkg/utils"
)

type ContactService interface {
	SendContactEmail(ctx context.Context, req *request.ContactRequest) error
}

type contactService struct {
	mailer  mailer.Mailer
	from    string
	to      string
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewContactService(m mailer.Mailer, config utils.EmailConfig, mt *metrics.Metrics, log *zap.Logger) ContactService {
	to := config.ContactTo
	if to == "" {
		to = config.From
	}
	return &contactService{
		mailer:  m,
		from:    config.From,
		to:      to,
		metrics: mt,
		log:     log.With(zap.String("service", "contact")),
	}
}

// SendContactEmail delivers the form to the contact inbox once. Failures are
// reported to the caller and not retried.
func (s *contactService) SendContactEmail(ctx context.Context, req *request.ContactRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperror.Validation("validation failed", errs)
	}

	text, html := mailer.ContactBodies(req.Name, req.Email, req.Subject, req.Message)
	msg := mailer.Message{
		From:     s.from,
		To:       s.to,
		ReplyTo:  req.Email,
		Subject:  "Contact form: " + req.Subject,
		TextBody: text,
		HTMLBody: html,
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.metrics.IncEmailSent(false)
		s.log.Error("Failed to send contact email",
			zap.Error(err),
			zap.String("reply_to", req.Email))
		return apperror.Internal("failed to send email", err)
	}

	s.metrics.IncEmailSent(true)
	s.log.Info("Contact email sent", zap.String("reply_to", req.Email))
	return nil
}
