package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"weddinginvite/internal/domain"
)

type retentionService struct {
	repo          domain.InvitationRepository
	media         domain.MediaStore
	mailer        domain.Mailer
	reportTo      string
	retentionDays int
	logger        *slog.Logger
}

// NewRetentionService builds the sweeper. reportTo may be empty, in which
// case no report email is sent.
func NewRetentionService(
	repo domain.InvitationRepository,
	media domain.MediaStore,
	mailer domain.Mailer,
	reportTo string,
	retentionDays int,
	logger *slog.Logger,
) domain.RetentionService {
	return &retentionService{
		repo:          repo,
		media:         media,
		mailer:        mailer,
		reportTo:      reportTo,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// Sweep purges every invitation whose wedding date is past the retention
// window. The database aggregate goes first; a media directory that cannot
// be removed is recorded on the item and the run continues.
func (s *retentionService) Sweep(ctx context.Context) (*domain.RetentionReport, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.retentionDays)
	expired, err := s.repo.ListExpired(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired invitations: %w", err)
	}

	report := &domain.RetentionReport{Items: make([]domain.RetentionItem, 0, len(expired))}
	for _, inv := range expired {
		if err := s.repo.Delete(ctx, inv.ID); err != nil {
			s.logger.Error("retention: failed to delete invitation", "slug", inv.Slug, "error", err)
			continue
		}
		item := domain.RetentionItem{
			Slug:      inv.Slug,
			GroomName: inv.GroomName,
			BrideName: inv.BrideName,
		}
		if err := s.media.DeleteAll(inv.Slug); err != nil {
			item.MediaError = err.Error()
			s.logger.Warn("retention: failed to delete media", "slug", inv.Slug, "error", err)
		}
		report.Items = append(report.Items, item)
		report.DeletedCount++
	}

	s.logger.Info("retention sweep finished", "cutoff", cutoff, "deleted", report.DeletedCount)
	s.sendReport(report)
	return report, nil
}

func (s *retentionService) sendReport(report *domain.RetentionReport) {
	if s.mailer == nil || s.reportTo == "" || report.DeletedCount == 0 {
		return
	}
	subject := fmt.Sprintf("Retention sweep: %d invitation(s) purged", report.DeletedCount)
	var html, text strings.Builder
	html.WriteString("<h3>Purged invitations</h3><ul>")
	for _, item := range report.Items {
		line := fmt.Sprintf("%s (%s / %s)", item.Slug, item.GroomName, item.BrideName)
		if item.MediaError != "" {
			line += " [media: " + item.MediaError + "]"
		}
		html.WriteString("<li>" + line + "</li>")
		text.WriteString(line + "\n")
	}
	html.WriteString("</ul>")
	if err := s.mailer.Send(s.reportTo, subject, html.String(), text.String()); err != nil {
		s.logger.Warn("retention: failed to send report email", "error", err)
	}
}
