package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dafibh/riskradar/riskradar-backend/internal/service"
	"github.com/dafibh/riskradar/riskradar-backend/internal/testutil"
)

const sampleProfileJSON = `{
	"monthlyIncome": 75000,
	"monthlyExpense": 45000,
	"emergencyFund": 150000,
	"monthlyEMI": 18000,
	"monthlySaving": 12000,
	"lifeCover": 9000000,
	"healthCover": 5,
	"retirementCorpus": 2500000,
	"age": 35,
	"equityPercent": 65
}`

type testServer struct {
	echo      *echo.Echo
	repo      *testutil.MockFinancialDataRepository
	publisher *testutil.MockEventPublisher
}

func newTestServer() *testServer {
	repo := testutil.NewMockFinancialDataRepository()
	publisher := &testutil.MockEventPublisher{}
	clock := func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }

	dataService := service.NewFinancialDataService(repo)
	dataService.SetEventPublisher(publisher)
	dataService.SetClock(clock)
	riskService := service.NewRiskService(repo)
	riskService.SetClock(clock)

	e := echo.New()
	e.Validator = NewRequestValidator()
	RegisterRoutes(e, NewRiskHandler(riskService), NewFinancialDataHandler(dataService, riskService), nil)

	return &testServer{echo: e, repo: repo, publisher: publisher}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}
