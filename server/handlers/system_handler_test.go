package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asprakserver/database"
)

func setupSystemRouter(t *testing.T) (*gin.Engine, *database.AsprakDB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewAsprakDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := NewSystemHandler(db)
	router := gin.New()
	router.GET("/health", h.HandleHealth)
	router.GET("/api/stats", h.HandleStats)
	return router, db
}

func TestHealth(t *testing.T) {
	router, _ := setupSystemRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ok", resp.Database)
}

func TestStats(t *testing.T) {
	router, db := setupSystemRouter(t)
	require.NoError(t, db.CreateAsprak(&database.Asprak{NIM: "1", FullName: "BUDI", Code: "BUD", Angkatan: 2024}))
	expired := &database.Asprak{NIM: "2", FullName: "LAMA", Code: "OLD", Angkatan: 2015}
	require.NoError(t, db.CreateAsprak(expired))
	require.NoError(t, db.ExpireAsprakCode(expired.ID, "1"))

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stats database.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 1, stats.Expired)
}
