package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"membrostotal_backend/internal/app"
	"membrostotal_backend/internal/auth"
	"membrostotal_backend/internal/config"
	"membrostotal_backend/internal/database"
	"membrostotal_backend/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer wraps an httptest server with its database handle.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer builds the full application over the database named by
// DATABASE_URL. Callers must skip when DATABASE_URL is unset.
func NewTestServer(t *testing.T) *TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration tests")
	}

	config.LoadConfig()
	cfg := config.GetConfig()
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()

	logger.Init("test")
	auth.Init(cfg.JWT.Secret, cfg.JWT.TTL)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables truncates every application table and reseeds reference
// data so each test starts from a known state.
func (ts *TestServer) ClearTables(t *testing.T) {
	err := ts.DB.Exec(`TRUNCATE TABLE
		users, profiles,
		trainings, modules, sub_modules, lessons,
		training_users, module_users, sub_module_users,
		payment_types, payments, payment_requests, refunds,
		notifications, notification_users,
		meetings, meeting_users,
		expert_requests, utm_params
		RESTART IDENTITY CASCADE`).Error
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}

	if err := database.Seed(ts.DB, "", ""); err != nil {
		t.Fatalf("failed to reseed reference data: %v", err)
	}
}

// SendRequest performs a JSON request against the test server and
// returns the response with its body read out.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return res, string(resBody)
}
