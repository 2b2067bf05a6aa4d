package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dafibh/riskradar/riskradar-backend/internal/analytics"
	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
	"github.com/dafibh/riskradar/riskradar-backend/internal/metrics"
	"github.com/dafibh/riskradar/riskradar-backend/internal/risk"
	"github.com/dafibh/riskradar/riskradar-backend/internal/websocket"
)

// FinancialDataService stores profile snapshots and the achievements they unlock
type FinancialDataService struct {
	repo           domain.FinancialDataRepository
	eventPublisher websocket.EventPublisher
	now            func() time.Time
	logger         zerolog.Logger
}

// NewFinancialDataService creates a new FinancialDataService
func NewFinancialDataService(repo domain.FinancialDataRepository) *FinancialDataService {
	return &FinancialDataService{
		repo:   repo,
		now:    func() time.Time { return time.Now().UTC() },
		logger: log.With().Str("component", "financial_data").Logger(),
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *FinancialDataService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// SetClock overrides the time source
func (s *FinancialDataService) SetClock(now func() time.Time) {
	s.now = now
}

// publishEvent publishes a WebSocket event if a publisher is configured
func (s *FinancialDataService) publishEvent(userID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// GetOrCreate returns the user's stored data, creating an empty record on first access
func (s *FinancialDataService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.FinancialData, error) {
	data, err := s.repo.GetByUserID(ctx, userID)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, domain.ErrFinancialDataNotFound) {
		return nil, fmt.Errorf("get financial data: %w", err)
	}

	data, err = s.repo.Create(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("create financial data: %w", err)
	}
	s.logger.Info().Str("user_id", userID.String()).Msg("Created financial data")
	return data, nil
}

// RecordSnapshot stores the profile as the user's current data, appends it to
// the history and persists any milestones and badges it newly qualifies for
func (s *FinancialDataService) RecordSnapshot(ctx context.Context, userID uuid.UUID, profile domain.FinancialProfile) (*domain.SnapshotResult, error) {
	now := s.now()
	profile = profile.Normalize()

	data, err := s.repo.SaveSnapshot(ctx, userID, profile, domain.NewHistoryEntry(profile, now))
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to save snapshot")
		return nil, fmt.Errorf("save snapshot: %w", err)
	}
	metrics.SnapshotRecorded()

	scores := risk.ComputeRiskScores(profile)

	newMilestones := analytics.CheckMilestones(profile, data.Milestones, now)
	if err := s.repo.AddMilestones(ctx, userID, newMilestones); err != nil {
		return nil, fmt.Errorf("add milestones: %w", err)
	}
	data.Milestones = append(data.Milestones, newMilestones...)

	newBadges := []domain.Badge{}
	for _, b := range analytics.Badges(scores, now) {
		if !domain.HasBadge(data.Badges, b.Name) {
			newBadges = append(newBadges, b)
		}
	}
	if err := s.repo.AddBadges(ctx, userID, newBadges); err != nil {
		return nil, fmt.Errorf("add badges: %w", err)
	}
	data.Badges = append(data.Badges, newBadges...)

	for _, m := range newMilestones {
		metrics.MilestoneUnlocked()
		s.publishEvent(userID, websocket.MilestoneUnlocked(m))
	}
	for _, b := range newBadges {
		metrics.BadgeEarned()
		s.publishEvent(userID, websocket.BadgeEarned(b))
	}
	if n := len(data.History); n > 0 {
		s.publishEvent(userID, websocket.SnapshotRecorded(data.History[n-1]))
	}

	s.logger.Info().
		Str("user_id", userID.String()).
		Int("history_len", len(data.History)).
		Int("new_milestones", len(newMilestones)).
		Int("new_badges", len(newBadges)).
		Msg("Recorded financial snapshot")

	return &domain.SnapshotResult{
		Data:          data,
		Scores:        scores,
		Grade:         risk.OverallGrade(scores),
		NewMilestones: newMilestones,
		NewBadges:     newBadges,
	}, nil
}

// AddMilestone stores a single milestone unless the user already has its type.
// The user must already have financial data.
func (s *FinancialDataService) AddMilestone(ctx context.Context, userID uuid.UUID, milestone domain.Milestone) (*domain.FinancialData, error) {
	milestone.Type = domain.MilestoneType(strings.TrimSpace(string(milestone.Type)))
	milestone.Name = strings.TrimSpace(milestone.Name)
	if milestone.Type == "" || len(milestone.Description) > domain.MaxDescriptionLength {
		return nil, domain.ErrInvalidInput
	}
	if milestone.UnlockedAt.IsZero() {
		milestone.UnlockedAt = s.now()
	}

	data, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if domain.HasMilestone(data.Milestones, milestone.Type) {
		return data, nil
	}
	if err := s.repo.AddMilestones(ctx, userID, []domain.Milestone{milestone}); err != nil {
		return nil, fmt.Errorf("add milestone: %w", err)
	}
	data.Milestones = append(data.Milestones, milestone)
	metrics.MilestoneUnlocked()
	s.publishEvent(userID, websocket.MilestoneUnlocked(milestone))
	return data, nil
}

// AddBadge stores a single badge unless the user already has one with its name.
// The user must already have financial data.
func (s *FinancialDataService) AddBadge(ctx context.Context, userID uuid.UUID, badge domain.Badge) (*domain.FinancialData, error) {
	badge.Name = strings.TrimSpace(badge.Name)
	if badge.Name == "" || len(badge.Description) > domain.MaxDescriptionLength {
		return nil, domain.ErrInvalidInput
	}
	if badge.EarnedAt.IsZero() {
		badge.EarnedAt = s.now()
	}

	data, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if domain.HasBadge(data.Badges, badge.Name) {
		return data, nil
	}
	if err := s.repo.AddBadges(ctx, userID, []domain.Badge{badge}); err != nil {
		return nil, fmt.Errorf("add badge: %w", err)
	}
	data.Badges = append(data.Badges, badge)
	metrics.BadgeEarned()
	s.publishEvent(userID, websocket.BadgeEarned(badge))
	return data, nil
}
