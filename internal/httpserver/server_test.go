package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivegray/minesweeper/internal/game"
	"github.com/olivegray/minesweeper/internal/store"
)

func newTestServer() *Server {
	return New(store.NewMemoryStore())
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

type viewPayload struct {
	Rows  int `json:"rows"`
	Cols  int `json:"cols"`
	Tiles [][]struct {
		Kind   string `json:"kind"`
		Number int    `json:"number"`
	} `json:"tiles"`
	MinesRemaining int    `json:"minesRemaining"`
	Status         string `json:"status"`
}

type newGamePayload struct {
	GameID string      `json:"gameId"`
	View   viewPayload `json:"view"`
}

func newGame(t *testing.T, s *Server, body any) newGamePayload {
	t.Helper()
	rec := doJSON(t, s, http.MethodPost, "/game/new", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out newGamePayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestNewGameFromDifficulty(t *testing.T) {
	s := newTestServer()
	res := newGame(t, s, map[string]string{"difficulty": "easy"})

	assert.NotEmpty(t, res.GameID)
	assert.Equal(t, 8, res.View.Rows)
	assert.Equal(t, 8, res.View.Cols)
	assert.Equal(t, 10, res.View.MinesRemaining)
	assert.Equal(t, "playing", res.View.Status)

	// A fresh board shows nothing but undug tiles; in particular no
	// mine positions cross the wire.
	for _, row := range res.View.Tiles {
		for _, tile := range row {
			assert.Equal(t, "undug", tile.Kind)
		}
	}
}

func TestNewGameExplicitDimensions(t *testing.T) {
	res := newGame(t, newTestServer(), map[string]int{"rows": 4, "cols": 6, "mines": 5})
	assert.Equal(t, 4, res.View.Rows)
	assert.Equal(t, 6, res.View.Cols)
	assert.Equal(t, 5, res.View.MinesRemaining)
}

func TestNewGameRejectsBadRequests(t *testing.T) {
	s := newTestServer()

	rec := doJSON(t, s, http.MethodPost, "/game/new", map[string]int{"rows": 5, "cols": 5, "mines": 30})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_config")

	rec = doJSON(t, s, http.MethodPost, "/game/new", map[string]string{"difficulty": "nightmare"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown_difficulty")
}

func TestMoveOnUnknownGame(t *testing.T) {
	s := newTestServer()
	for _, path := range []string{"/game/dig", "/game/flag", "/game/chord"} {
		rec := doJSON(t, s, http.MethodPost, path, map[string]any{"gameId": "missing", "row": 0, "col": 0})
		assert.Equalf(t, http.StatusNotFound, rec.Code, "path %s", path)
	}
	rec := doJSON(t, s, http.MethodGet, "/game/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDigRejectsBadInput(t *testing.T) {
	s := newTestServer()
	res := newGame(t, s, map[string]string{"difficulty": "easy"})

	rec := doJSON(t, s, http.MethodPost, "/game/dig", map[string]any{"gameId": res.GameID, "row": 99, "col": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "out_of_bounds")

	req := httptest.NewRequest(http.MethodPost, "/game/dig", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDigReturnsOutcomeAndView(t *testing.T) {
	s := newTestServer()
	res := newGame(t, s, map[string]string{"difficulty": "easy"})

	rec := doJSON(t, s, http.MethodPost, "/game/dig", map[string]any{"gameId": res.GameID, "row": 0, "col": 0})
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Outcome string      `json:"outcome"`
		View    viewPayload `json:"view"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	// Placement is random, so any outcome is legal; the view must
	// stay coherent with it.
	assert.Contains(t, []string{game.Continue.String(), game.Win.String(), game.Loss.String()}, out.Outcome)
	switch out.Outcome {
	case "loss":
		assert.Equal(t, "lost", out.View.Status)
		assert.Equal(t, "mine", out.View.Tiles[0][0].Kind)
	case "win":
		assert.Equal(t, "won", out.View.Status)
	default:
		assert.Equal(t, "playing", out.View.Status)
		assert.Equal(t, "number", out.View.Tiles[0][0].Kind)
	}
}

func TestFlagToggleOverHTTP(t *testing.T) {
	s := newTestServer()
	res := newGame(t, s, map[string]string{"difficulty": "easy"})

	rec := doJSON(t, s, http.MethodPost, "/game/flag", map[string]any{"gameId": res.GameID, "row": 0, "col": 0})
	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		View viewPayload `json:"view"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "flag", out.View.Tiles[0][0].Kind)
	assert.Equal(t, 9, out.View.MinesRemaining)

	rec = doJSON(t, s, http.MethodPost, "/game/flag", map[string]any{"gameId": res.GameID, "row": 0, "col": 0})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "undug", out.View.Tiles[0][0].Kind)
	assert.Equal(t, 10, out.View.MinesRemaining)
}

func TestViewEndpoint(t *testing.T) {
	s := newTestServer()
	res := newGame(t, s, map[string]string{"difficulty": "medium"})

	rec := doJSON(t, s, http.MethodGet, "/game/"+res.GameID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		View viewPayload `json:"view"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 15, out.View.Rows)
	assert.Equal(t, 15, out.View.Cols)
	assert.Equal(t, "playing", out.View.Status)
}
