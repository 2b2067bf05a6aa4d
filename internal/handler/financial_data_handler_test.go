package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
)

func TestGetFinancialData_CreatesOnFirstAccess(t *testing.T) {
	s := newTestServer()
	userID := uuid.New()

	rec := s.do(t, http.MethodGet, "/api/v1/financial-data/"+userID.String(), "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var data domain.FinancialData
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if data.UserID != userID {
		t.Errorf("Expected user %s, got %s", userID, data.UserID)
	}
	if _, ok := s.repo.Data[userID]; !ok {
		t.Error("Expected record to be created")
	}
}

func TestGetFinancialData_InvalidUserID(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodGet, "/api/v1/financial-data/not-a-uuid", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
	problem := decodeProblem(t, rec.Body.Bytes())
	if len(problem.Errors) != 1 || problem.Errors[0].Field != "userId" {
		t.Errorf("Expected userId field error, got %+v", problem.Errors)
	}
}

func TestGetFinancialData_RepositoryFailure(t *testing.T) {
	s := newTestServer()
	s.repo.GetByUserIDFn = func(uuid.UUID) (*domain.FinancialData, error) {
		return nil, errors.New("connection refused")
	}

	rec := s.do(t, http.MethodGet, "/api/v1/financial-data/"+uuid.NewString(), "")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", rec.Code)
	}
	if problem := decodeProblem(t, rec.Body.Bytes()); problem.Type != ErrorTypeInternal {
		t.Errorf("Expected internal error type, got %s", problem.Type)
	}
}

func TestRecordSnapshot(t *testing.T) {
	s := newTestServer()
	userID := uuid.New()
	path := "/api/v1/financial-data/" + userID.String() + "/snapshot"

	rec := s.do(t, http.MethodPost, path, sampleProfileJSON)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result domain.SnapshotResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(result.Data.History) != 1 {
		t.Errorf("Expected 1 history entry, got %d", len(result.Data.History))
	}
	if len(result.NewMilestones) != 2 {
		t.Errorf("Expected 2 new milestones, got %d", len(result.NewMilestones))
	}
	if result.Grade.Grade != domain.GradeB {
		t.Errorf("Expected grade B, got %s", result.Grade.Grade)
	}

	// Second snapshot unlocks nothing new
	rec = s.do(t, http.MethodPost, path, sampleProfileJSON)
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(result.NewMilestones) != 0 || len(result.NewBadges) != 0 {
		t.Errorf("Expected no new achievements, got %d milestones %d badges", len(result.NewMilestones), len(result.NewBadges))
	}
	if len(result.Data.History) != 2 {
		t.Errorf("Expected 2 history entries, got %d", len(result.Data.History))
	}
}

func TestRecordSnapshot_MalformedBody(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodPost, "/api/v1/financial-data/"+uuid.NewString()+"/snapshot", `[1, 2`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestAddMilestone(t *testing.T) {
	s := newTestServer()
	userID := uuid.New()
	path := "/api/v1/financial-data/" + userID.String() + "/milestone"

	rec := s.do(t, http.MethodPost, path, `{"type": "first_budget", "description": "Made a budget"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404 without stored data, got %d", rec.Code)
	}

	s.repo.AddFinancialData(&domain.FinancialData{UserID: userID})

	rec = s.do(t, http.MethodPost, path, `{"type": "", "description": "Made a budget"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400 for missing type, got %d", rec.Code)
	}

	rec = s.do(t, http.MethodPost, path, `{"type": "first_budget", "description": "Made a budget"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var data domain.FinancialData
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(data.Milestones) != 1 || data.Milestones[0].Type != "first_budget" {
		t.Errorf("Expected first_budget milestone, got %+v", data.Milestones)
	}

	if types := s.publisher.Types(); len(types) != 1 || types[0] != "milestone.unlocked" {
		t.Errorf("Expected one milestone.unlocked event, got %v", types)
	}
}

func TestAddBadge(t *testing.T) {
	s := newTestServer()
	userID := uuid.New()
	s.repo.AddFinancialData(&domain.FinancialData{UserID: userID})
	path := "/api/v1/financial-data/" + userID.String() + "/badge"

	rec := s.do(t, http.MethodPost, path, `{"description": "no name"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
	if problem := decodeProblem(t, rec.Body.Bytes()); len(problem.Errors) == 0 || problem.Errors[0].Field != "name" {
		t.Errorf("Expected name field error, got %+v", problem.Errors)
	}

	for i := 0; i < 2; i++ {
		rec = s.do(t, http.MethodPost, path, `{"name": "Early Bird", "description": "Joined early"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
	}

	if got := len(s.repo.Data[userID].Badges); got != 1 {
		t.Errorf("Expected badge stored once, got %d", got)
	}
}

func TestGetAnalysis(t *testing.T) {
	s := newTestServer()
	userID := uuid.New()
	path := "/api/v1/financial-data/" + userID.String() + "/analysis"

	rec := s.do(t, http.MethodGet, path, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}

	s.do(t, http.MethodPost, "/api/v1/financial-data/"+userID.String()+"/snapshot", sampleProfileJSON)

	rec = s.do(t, http.MethodGet, path, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var analysis domain.RiskAnalysis
	if err := json.Unmarshal(rec.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if analysis.UserID != userID {
		t.Errorf("Expected user %s, got %s", userID, analysis.UserID)
	}
	if len(analysis.Milestones) != 2 {
		t.Errorf("Expected stored milestones in analysis, got %d", len(analysis.Milestones))
	}
}
