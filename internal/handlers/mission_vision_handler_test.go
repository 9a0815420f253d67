package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ourkidney/api-backend/internal/database"
	"github.com/ourkidney/api-backend/internal/models"
	"github.com/ourkidney/api-backend/internal/repositories"
)

func setupStatementRouter(t *testing.T) (*gin.Engine, *repositories.MissionVisionRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.InitDB(database.TestConfig())
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close(db)
	})

	repo := repositories.NewMissionVisionRepository(db)
	h := NewMissionVisionHandler(repo)

	r := gin.New()
	r.POST("/api/mission-vision", h.Create)
	r.PUT("/api/mission-vision/:id", h.Update)
	r.DELETE("/api/mission-vision/:id", h.Delete)
	return r, repo
}

func putStatementJSON(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(`{"description":"Updated statement text."}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStatementCreateRejectsUnknownType(t *testing.T) {
	r, _ := setupStatementRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/mission-vision", strings.NewReader(`{"type":"motto","description":"text"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
}

func TestStatementUpdateDescription(t *testing.T) {
	r, repo := setupStatementRouter(t)

	statement := &models.MissionVision{
		Type:        models.StatementTypeMission,
		Description: "Original text.",
	}
	if err := repo.Create(statement); err != nil {
		t.Fatalf("Failed to create statement: %v", err)
	}

	w := putStatementJSON(r, "/api/mission-vision/"+strconv.FormatUint(uint64(statement.ID), 10))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (%s)", w.Code, w.Body.String())
	}

	updated, err := repo.FindByID(statement.ID)
	if err != nil || updated == nil {
		t.Fatalf("Failed to reload statement: %v", err)
	}
	if updated.Description != "Updated statement text." {
		t.Errorf("Description = %q, want updated text", updated.Description)
	}
	if updated.Type != models.StatementTypeMission {
		t.Errorf("Type changed on update: %q", updated.Type)
	}
}

func TestStatementUpdateUnknownIDReturns404(t *testing.T) {
	r, _ := setupStatementRouter(t)

	w := putStatementJSON(r, "/api/mission-vision/9999")
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}
}

func TestStatementDeleteUnknownIDReturns404(t *testing.T) {
	r, _ := setupStatementRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/mission-vision/9999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}
}
