package service

import (
	"context"
	"fmt"
	"strings"

	"estatedesk-backend/internal/domain"
	"estatedesk-backend/internal/logger"
	"estatedesk-backend/internal/repository"
)

type inquiryService struct {
	inquiryRepo repository.InquiryRepository
	email       EmailService
}

// NewInquiryService builds an inquiry service. email may be nil when
// notifications are not configured.
func NewInquiryService(inquiryRepo repository.InquiryRepository, email EmailService) InquiryService {
	return &inquiryService{inquiryRepo: inquiryRepo, email: email}
}

func (s *inquiryService) SubmitInquiry(ctx context.Context, inquiry *domain.Inquiry) error {
	if strings.TrimSpace(inquiry.Name) == "" {
		return fmt.Errorf("inquiry name is required")
	}
	if strings.TrimSpace(inquiry.Email) == "" {
		return fmt.Errorf("inquiry email is required")
	}
	if strings.TrimSpace(inquiry.Message) == "" {
		return fmt.Errorf("inquiry message is required")
	}

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return fmt.Errorf("failed to store inquiry: %w", err)
	}

	// Notification delivery is best effort; the inquiry is already stored.
	if s.email != nil {
		if err := s.email.SendInquiryNotification(ctx, inquiry); err != nil {
			logger.ErrorContext(ctx, "failed to send inquiry notification",
				"inquiry_id", inquiry.ID, "error", err)
		}
	}

	return nil
}

func (s *inquiryService) ListInquiries(ctx context.Context, page, pageSize int32) ([]domain.Inquiry, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.inquiryRepo.List(ctx, page, pageSize)
}
