package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/gomoku/backend/internal/domain"
	"github.com/iamasit07/gomoku/backend/internal/service/bot"
	"github.com/iamasit07/gomoku/backend/internal/service/game"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := game.NewService(game.Options{
		BoardSizes: []int{domain.SmallBoard, domain.LargeBoard},
		Engine:     bot.DefaultConfig(),
		Seed:       5,
	}, nil)
	return NewRouter(NewMoveHandler(svc, domain.SmallBoard), nil, []string{"http://localhost:5173"})
}

func grid(n int) [][]int {
	g := make([][]int, n)
	for i := range g {
		g[i] = make([]int, n)
	}
	return g
}

func postMove(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeMove(t *testing.T, w *httptest.ResponseRecorder) *[2]int {
	t.Helper()
	var resp struct {
		Move *[2]int `json:"move"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Move
}

func TestAIMoveTakesWin(t *testing.T) {
	router := newTestRouter()
	g := grid(12)
	for c := 0; c < 4; c++ {
		g[0][c] = int(domain.Computer)
	}
	g[5][5], g[6][6], g[7][7] = 1, 1, 1

	for _, path := range []string{"/ai_move", "/api/move"} {
		w := postMove(t, router, path, gin.H{"board": g, "tier": "hard"})
		require.Equal(t, http.StatusOK, w.Code, path)
		mv := decodeMove(t, w)
		require.NotNil(t, mv)
		assert.Equal(t, [2]int{0, 4}, *mv)
	}
}

func TestAIMoveAcceptsMode(t *testing.T) {
	router := newTestRouter()
	g := grid(12)
	g[6][6] = int(domain.Human)

	w := postMove(t, router, "/ai_move", gin.H{"board": g, "mode": "Medium"})
	require.Equal(t, http.StatusOK, w.Code)
	mv := decodeMove(t, w)
	require.NotNil(t, mv)
	assert.Equal(t, int(domain.Empty), g[mv[0]][mv[1]])
}

func TestAIMoveFullBoard(t *testing.T) {
	router := newTestRouter()
	g := grid(12)
	for r := range g {
		for c := range g[r] {
			if ((c/2)+r)%2 == 0 {
				g[r][c] = int(domain.Computer)
			} else {
				g[r][c] = int(domain.Human)
			}
		}
	}

	w := postMove(t, router, "/ai_move", gin.H{"board": g, "tier": "easy"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"move":null}`, w.Body.String())
}

func TestAIMoveRejectsBadInput(t *testing.T) {
	router := newTestRouter()
	bad := grid(12)
	bad[3][3] = 7

	tests := []struct {
		name string
		body any
	}{
		{"unknown tier", gin.H{"board": grid(12), "tier": "expert"}},
		{"bad cell value", gin.H{"board": bad, "tier": "easy"}},
		{"ragged board", gin.H{"board": [][]int{{0, 0}, {0}}}},
		{"unsupported size", gin.H{"board": grid(9), "tier": "easy"}},
		{"missing board", gin.H{"tier": "easy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postMove(t, router, "/ai_move", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestSettingsAndHealth(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/config", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"boardSizes":[12,15],"tiers":["easy","medium","hard"],"defaultBoardSize":12}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/ai_move", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
