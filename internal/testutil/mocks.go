package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
	"github.com/dafibh/riskradar/riskradar-backend/internal/websocket"
)

// MockFinancialDataRepository is an in-memory implementation of domain.FinancialDataRepository
type MockFinancialDataRepository struct {
	Data map[uuid.UUID]*domain.FinancialData

	GetByUserIDFn  func(userID uuid.UUID) (*domain.FinancialData, error)
	SaveSnapshotFn func(userID uuid.UUID, profile domain.FinancialProfile, entry domain.HistoryEntry) (*domain.FinancialData, error)

	mu sync.Mutex
}

// NewMockFinancialDataRepository creates a new MockFinancialDataRepository
func NewMockFinancialDataRepository() *MockFinancialDataRepository {
	return &MockFinancialDataRepository{
		Data: make(map[uuid.UUID]*domain.FinancialData),
	}
}

// GetByUserID returns a copy of the stored data
func (m *MockFinancialDataRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.FinancialData, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if data, ok := m.Data[userID]; ok {
		return clone(data), nil
	}
	return nil, domain.ErrFinancialDataNotFound
}

// Create stores an empty record unless one already exists
func (m *MockFinancialDataRepository) Create(ctx context.Context, userID uuid.UUID) (*domain.FinancialData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Data[userID]; !ok {
		now := time.Now().UTC()
		m.Data[userID] = &domain.FinancialData{
			UserID:     userID,
			History:    []domain.HistoryEntry{},
			Milestones: []domain.Milestone{},
			Badges:     []domain.Badge{},
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}
	return clone(m.Data[userID]), nil
}

// SaveSnapshot replaces the profile and appends to the capped history
func (m *MockFinancialDataRepository) SaveSnapshot(ctx context.Context, userID uuid.UUID, profile domain.FinancialProfile, entry domain.HistoryEntry) (*domain.FinancialData, error) {
	if m.SaveSnapshotFn != nil {
		return m.SaveSnapshotFn(userID, profile, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.Data[userID]
	if !ok {
		data = &domain.FinancialData{UserID: userID, CreatedAt: entry.Date}
		m.Data[userID] = data
	}
	data.Profile = profile.Normalize()
	data.History = domain.AppendHistory(data.History, entry)
	data.UpdatedAt = entry.Date
	return clone(data), nil
}

// AddMilestones appends milestones whose type is not stored yet
func (m *MockFinancialDataRepository) AddMilestones(ctx context.Context, userID uuid.UUID, milestones []domain.Milestone) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.Data[userID]
	if !ok {
		return domain.ErrFinancialDataNotFound
	}
	for _, ms := range milestones {
		if !domain.HasMilestone(data.Milestones, ms.Type) {
			data.Milestones = append(data.Milestones, ms)
		}
	}
	return nil
}

// AddBadges appends badges whose name is not stored yet
func (m *MockFinancialDataRepository) AddBadges(ctx context.Context, userID uuid.UUID, badges []domain.Badge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.Data[userID]
	if !ok {
		return domain.ErrFinancialDataNotFound
	}
	for _, b := range badges {
		if !domain.HasBadge(data.Badges, b.Name) {
			data.Badges = append(data.Badges, b)
		}
	}
	return nil
}

// AddFinancialData seeds the repository
func (m *MockFinancialDataRepository) AddFinancialData(data *domain.FinancialData) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[data.UserID] = clone(data)
}

func clone(data *domain.FinancialData) *domain.FinancialData {
	out := *data
	out.History = append([]domain.HistoryEntry{}, data.History...)
	out.Milestones = append([]domain.Milestone{}, data.Milestones...)
	out.Badges = append([]domain.Badge{}, data.Badges...)
	return &out
}

// PublishedEvent records one call to MockEventPublisher.Publish
type PublishedEvent struct {
	UserID uuid.UUID
	Event  websocket.Event
}

// MockEventPublisher captures published events
type MockEventPublisher struct {
	Events []PublishedEvent
	mu     sync.Mutex
}

// Publish records the event
func (m *MockEventPublisher) Publish(userID uuid.UUID, event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, PublishedEvent{UserID: userID, Event: event})
}

// Types returns the type of every captured event in order
func (m *MockEventPublisher) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.Events))
	for i, e := range m.Events {
		types[i] = e.Event.Type
	}
	return types
}
