//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dealflowhq/dealflow-backend/internal/adapter/postgres"
	"github.com/dealflowhq/dealflow-backend/internal/adapter/postgres/activity"
	"github.com/dealflowhq/dealflow-backend/internal/adapter/postgres/deal"
	memorepo "github.com/dealflowhq/dealflow-backend/internal/adapter/postgres/memo"
	"github.com/dealflowhq/dealflow-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/dealflowhq/dealflow-backend/internal/auth"
	"github.com/dealflowhq/dealflow-backend/internal/config"
	memosvc "github.com/dealflowhq/dealflow-backend/internal/service/memo"
	"github.com/dealflowhq/dealflow-backend/internal/service/pipeline"
	"github.com/dealflowhq/dealflow-backend/internal/transport/middleware"
	"github.com/dealflowhq/dealflow-backend/internal/transport/rest"
)

const (
	testJWTSecret = "test-secret-at-least-32-chars-long!!"
	testJWTIssuer = "dealflow-test"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	dealRepo := deal.New(pool)
	activityRepo := activity.New(pool)
	memoRepo := memorepo.New(pool)

	pipelineCfg := config.PipelineConfig{
		DefaultPageSize:  50,
		MaxPageSize:      200,
		ConflictAttempts: 3,
	}

	pipelineService := pipeline.NewService(logger, dealRepo, activityRepo, txm, pipelineCfg)
	memoService := memosvc.NewService(logger, memoRepo, dealRepo, txm, pipelineCfg)

	validator := authpkg.NewJWTValidator(testJWTSecret, testJWTIssuer)

	dealHandler := rest.NewDealHandler(pipelineService, logger)
	memoHandler := rest.NewMemoHandler(memoService, logger)
	healthHandler := rest.NewHealthHandler(pool, "test-version")

	mux := rest.NewRouter(dealHandler, memoHandler, healthHandler)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(validator),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// mintToken signs an access token for the given user the way the auth
// collaborator would.
func mintToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    testJWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(15 * time.Minute)),
	})

	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// doJSON sends a request with an optional JSON body and bearer token, and
// decodes the JSON response body when there is one.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}

	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decode response %q: %v", raw, err)
	}
	return resp.StatusCode, result
}
