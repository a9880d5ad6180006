package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/club-stats/internal/config"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		HTTPAddr:            ":0",
		CORSAllowedOrigins:  []string{"*"},
		StoreDriver:         config.StoreDriverMemory,
		StoreSeedDemo:       true,
		AdminSecret:         "s3cret",
		ImportParseWorkers:  2,
		RankingDefaultLimit: 10,
	}
}

func TestNewHTTPServer_MemoryStore(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(context.Background(), memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	defer func() { require.NoError(t, cleanup()) }()

	req := httptest.NewRequest(http.MethodGet, "/v1/players", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "JuanP")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestNewHTTPServer_AdminRoutesUseConfiguredSecret(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(context.Background(), memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	req := httptest.NewRequest(http.MethodGet, "/v1/export/matches", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "date,opponent"))
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""

	_, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.StoreDriver = "sqlite"

	_, err := openStore(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestPostgresStore_BindsRepositoriesToDB(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")

	st := postgresStore(db)
	require.NotNil(t, st.unit)
	require.NotNil(t, st.repos.Players)
	require.NotNil(t, st.repos.Appearances)

	mock.ExpectClose()
	require.NoError(t, st.close())
	require.NoError(t, mock.ExpectationsWereMet())
}
