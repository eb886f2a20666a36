package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/denmor86/pedidos-sync/internal/config"
	"github.com/denmor86/pedidos-sync/internal/logger"
	"github.com/denmor86/pedidos-sync/internal/metrics"
	"github.com/denmor86/pedidos-sync/internal/models"
	"github.com/denmor86/pedidos-sync/internal/services/mocks"
	"go.uber.org/mock/gomock"
)

func TestRouter_Routes(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	mockPipeline := mocks.NewMockPipelineService(ctrl)
	mockReports := mocks.NewMockReportsService(ctrl)
	mockPipeline.EXPECT().Run(gomock.Any(), gomock.Any()).Return(models.Report{Outcome: models.OutcomeNoData})

	router := NewRouter(cfg, mockPipeline, mockReports, time.UTC, metrics.NewRegistry().Handler())
	server := httptest.NewServer(router.HandleRouter())
	defer server.Close()

	testCases := []struct {
		Method         string
		Path           string
		ExpectedStatus int
	}{
		{Method: http.MethodGet, Path: "/", ExpectedStatus: http.StatusOK},
		{Method: http.MethodPost, Path: "/rodar-pedidos", ExpectedStatus: http.StatusOK},
		{Method: http.MethodGet, Path: "/rodar-pedidos", ExpectedStatus: http.StatusMethodNotAllowed},
		{Method: http.MethodGet, Path: "/metrics", ExpectedStatus: http.StatusOK},
		{Method: http.MethodGet, Path: "/unknown", ExpectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.Method+" "+tc.Path, func(t *testing.T) {
			req, err := http.NewRequest(tc.Method, server.URL+tc.Path, nil)
			if err != nil {
				t.Fatalf("Failed to create request: %v", err)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tc.ExpectedStatus {
				t.Errorf("Expected status %d, got %d", tc.ExpectedStatus, resp.StatusCode)
			}
		})
	}
}

func TestRouter_TokenRequired(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.JWTSecret = "secret"
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	ctrl := gomock.NewController(t)
	mockPipeline := mocks.NewMockPipelineService(ctrl)
	mockReports := mocks.NewMockReportsService(ctrl)
	mockPipeline.EXPECT().Run(gomock.Any(), gomock.Any()).Return(models.Report{Outcome: models.OutcomeDone}).Times(1)

	router := NewRouter(cfg, mockPipeline, mockReports, time.UTC, nil)
	handler := router.HandleRouter()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rodar-pedidos", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", w.Code)
	}

	_, token, err := router.TokenAuth().Encode(map[string]interface{}{"sub": "scheduler"})
	if err != nil {
		t.Fatalf("Failed to encode token: %v", err)
	}
	w = httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/rodar-pedidos", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 with token, got %d", w.Code)
	}
}
