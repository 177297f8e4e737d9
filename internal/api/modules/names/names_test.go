package names_module

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ethanbaker/names/internal/api/middleware"
	names_store "github.com/ethanbaker/names/internal/stores/names"
	"github.com/ethanbaker/names/pkg/names"
	"github.com/ethanbaker/names/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenStore fails every write and read
type brokenStore struct {
	names.StoreInterface
}

func (b *brokenStore) Save(ctx context.Context, value string, createdAt time.Time) (names.Name, error) {
	return names.Name{}, names.NewStorageError("save", errors.New("Deadlock found when trying to get lock"))
}

func (b *brokenStore) List(ctx context.Context) ([]names.Name, error) {
	return nil, names.NewStorageError("list", errors.New("Lost connection to MySQL server"))
}

func newEngine(store names.StoreInterface, writeMiddleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(middleware.ErrorHandler())
	RegisterRoutes(&engine.RouterGroup, names.NewService(store), writeMiddleware...)
	return engine
}

func TestStorageFailures(t *testing.T) {
	engine := newEngine(&brokenStore{})

	t.Run("list", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/names", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"storage failure","detail":"storage list failed: Lost connection to MySQL server"}`, w.Body.String())
	})

	t.Run("create", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/names", strings.NewReader(`{"name":"a"}`)))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "storage failure")
	})
}

func TestWriteMiddleware(t *testing.T) {
	calls := 0
	counting := func(c *gin.Context) {
		calls++
		c.Next()
	}
	engine := newEngine(names_store.NewInMemoryStore(), counting)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/names", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, calls)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/names", strings.NewReader(`{"name":"a"}`)))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
}

func TestNewService(t *testing.T) {
	t.Run("falls back to in-memory store", func(t *testing.T) {
		service, err := NewService(utils.NewConfig(nil))
		require.NoError(t, err)

		_, ok := service.Store().(*names_store.InMemoryStore)
		assert.True(t, ok)
	})

	t.Run("bad options file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_open_conns: [not, a, number]\n"), 0o600))

		_, err := NewService(utils.NewConfig(map[string]string{
			"MYSQL_DATABASE":    "names",
			"STORE_CONFIG_PATH": path,
		}))
		assert.ErrorContains(t, err, "failed to parse store options file")
	})
}
