package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/domain"
)

// TestSuggestionFlow covers the author's side: create, edit, and the
// archived end state where nothing further lands.
func TestSuggestionFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, authorToken := app.createUserAndToken(t, domain.RoleStudent)
	_, adminToken := app.createUserAndToken(t, domain.RoleAdmin)

	// Create.
	var suggestion domain.Suggestion
	resp := app.do(t, "POST", "/api/suggestions", authorToken, map[string]any{
		"title":    "Lockers para mochilas",
		"body":     "Faltan lockers en el edificio nuevo.",
		"category": "infraestructura",
	}, &suggestion)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, domain.SuggestionStatusPending, suggestion.Status)
	assert.False(t, suggestion.IsFlagged)

	// Invalid category.
	resp = app.do(t, "POST", "/api/suggestions", authorToken, map[string]any{
		"title":    "t",
		"body":     "b",
		"category": "deportes",
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Author edits their own suggestion.
	var updated domain.Suggestion
	resp = app.do(t, "PATCH", fmt.Sprintf("/api/suggestions/%s", suggestion.ID), authorToken, map[string]any{
		"title": "Lockers para mochilas y cascos",
	}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Lockers para mochilas y cascos", updated.Title)

	// Someone else cannot.
	_, otherToken := app.createUserAndToken(t, domain.RoleStudent)
	resp = app.do(t, "PATCH", fmt.Sprintf("/api/suggestions/%s", suggestion.ID), otherToken, map[string]any{
		"title": "hackeado",
	}, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// A no-op patch is rejected.
	resp = app.do(t, "PATCH", fmt.Sprintf("/api/suggestions/%s", suggestion.ID), authorToken, map[string]any{
		"title": "Lockers para mochilas y cascos",
	}, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	// Admin responds and resolves.
	var resolved domain.Suggestion
	resp = app.do(t, "POST", fmt.Sprintf("/api/suggestions/%s/response", suggestion.ID), adminToken, map[string]any{
		"reply":  "Se instalarán 40 lockers este semestre.",
		"status": "resolved",
	}, &resolved)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.SuggestionStatusResolved, resolved.Status)
	require.NotNil(t, resolved.AdminReply)

	// Students cannot respond.
	resp = app.do(t, "POST", fmt.Sprintf("/api/suggestions/%s/response", suggestion.ID), authorToken, map[string]any{
		"reply":  "me respondo solo",
		"status": "resolved",
	}, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Archive, then verify the suggestion is frozen.
	resp = app.do(t, "POST", fmt.Sprintf("/api/suggestions/%s/response", suggestion.ID), adminToken, map[string]any{
		"reply":  "Cerrada tras la instalación.",
		"status": "archived",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = app.do(t, "PATCH", fmt.Sprintf("/api/suggestions/%s", suggestion.ID), authorToken, map[string]any{
		"title": "reabrir por favor",
	}, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = app.do(t, "POST", fmt.Sprintf("/api/suggestions/%s/response", suggestion.ID), adminToken, map[string]any{
		"reply":  "otra vuelta",
		"status": "in_progress",
	}, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// TestSuggestionListingVisibility checks that students only see their own
// suggestions while admins see everything and can filter.
func TestSuggestionListingVisibility(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	aliceID, aliceToken := app.createUserAndToken(t, domain.RoleStudent)
	_, bobToken := app.createUserAndToken(t, domain.RoleStudent)
	_, adminToken := app.createUserAndToken(t, domain.RoleAdmin)

	for _, tok := range []string{aliceToken, bobToken} {
		resp := app.do(t, "POST", "/api/suggestions", tok, map[string]any{
			"title":    "Sugerencia",
			"body":     "Cuerpo",
			"category": "otro",
		}, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var mine []*domain.Suggestion
	resp := app.do(t, "GET", "/api/suggestions", aliceToken, nil, &mine)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, mine, 1)
	assert.Equal(t, aliceID, mine[0].AuthorID)

	var all []*domain.Suggestion
	resp = app.do(t, "GET", "/api/suggestions", adminToken, nil, &all)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, all, 2)

	var filtered []*domain.Suggestion
	resp = app.do(t, "GET", "/api/suggestions?author="+aliceID.String(), adminToken, nil, &filtered)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, filtered, 1)
	assert.Equal(t, aliceID, filtered[0].AuthorID)
}

// TestReportFlow checks the derived flag end to end against the database:
// report -> flagged, duplicate -> 409, dismiss -> unflagged.
func TestReportFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, authorToken := app.createUserAndToken(t, domain.RoleStudent)
	_, reporterToken := app.createUserAndToken(t, domain.RoleStudent)
	_, adminToken := app.createUserAndToken(t, domain.RoleAdmin)

	var suggestion domain.Suggestion
	resp := app.do(t, "POST", "/api/suggestions", authorToken, map[string]any{
		"title":    "Contenido dudoso",
		"body":     "...",
		"category": "otro",
	}, &suggestion)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	isFlagged := func() bool {
		var flagged bool
		err := app.DB.QueryRow("SELECT is_flagged FROM suggestions WHERE id = $1", suggestion.ID).Scan(&flagged)
		require.NoError(t, err)
		return flagged
	}

	// The author cannot report their own suggestion.
	resp = app.do(t, "POST", fmt.Sprintf("/api/suggestions/%s/reports", suggestion.ID), authorToken, map[string]any{
		"reason": "spam",
	}, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var report domain.Report
	resp = app.do(t, "POST", fmt.Sprintf("/api/suggestions/%s/reports", suggestion.ID), reporterToken, map[string]any{
		"reason": "ofensivo",
	}, &report)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, isFlagged())

	// The same reporter bounces off the unique constraint.
	resp = app.do(t, "POST", fmt.Sprintf("/api/suggestions/%s/reports", suggestion.ID), reporterToken, map[string]any{
		"reason": "spam",
	}, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	// The report shows up in the triage listing.
	var open []*domain.OpenReport
	resp = app.do(t, "GET", "/api/reports", adminToken, nil, &open)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, open, 1)
	assert.Equal(t, suggestion.ID, open[0].SuggestionID)
	assert.Equal(t, suggestion.Title, open[0].SuggestionTitle)

	// Students cannot see the queue.
	resp = app.do(t, "GET", "/api/reports", reporterToken, nil, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Dismissing the only report clears the flag.
	resp = app.do(t, "DELETE", fmt.Sprintf("/api/reports/%s", report.ID), adminToken, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, isFlagged())

	resp = app.do(t, "DELETE", fmt.Sprintf("/api/reports/%s", report.ID), adminToken, nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClearAllReports(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, authorToken := app.createUserAndToken(t, domain.RoleStudent)
	_, adminToken := app.createUserAndToken(t, domain.RoleAdmin)

	var suggestion domain.Suggestion
	resp := app.do(t, "POST", "/api/suggestions", authorToken, map[string]any{
		"title":    "Reportada varias veces",
		"body":     "...",
		"category": "otro",
	}, &suggestion)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	for i := 0; i < 3; i++ {
		_, reporterToken := app.createUserAndToken(t, domain.RoleStudent)
		resp = app.do(t, "POST", fmt.Sprintf("/api/suggestions/%s/reports", suggestion.ID), reporterToken, map[string]any{
			"reason": "spam",
		}, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var cleared map[string]int64
	resp = app.do(t, "DELETE", fmt.Sprintf("/api/suggestions/%s/reports", suggestion.ID), adminToken, nil, &cleared)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(3), cleared["cleared"])

	var flagged bool
	err := app.DB.QueryRow("SELECT is_flagged FROM suggestions WHERE id = $1", suggestion.ID).Scan(&flagged)
	require.NoError(t, err)
	assert.False(t, flagged)
}
