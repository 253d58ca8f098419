package game

import (
	"context"
	"sync"

	"github.com/iamasit07/gomoku/backend/internal/domain"
	"github.com/iamasit07/gomoku/backend/internal/service/bot"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []domain.ServerMessage
}

func (n *recordingNotifier) SendMessage(_ string, message domain.ServerMessage) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return nil
}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.messages))
	for i, m := range n.messages {
		out[i] = m.Type
	}
	return out
}

func (n *recordingNotifier) last() domain.ServerMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.messages[len(n.messages)-1]
}

type memoryCache struct {
	entries map[string]*domain.Position
	gets    int
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]*domain.Position{}}
}

func cacheKey(tier string, b *domain.Board) string {
	return tier + ":" + fmtGrid(b.Grid())
}

func fmtGrid(grid [][]int) string {
	buf := make([]byte, 0, len(grid)*len(grid))
	for _, row := range grid {
		for _, v := range row {
			buf = append(buf, byte('0'+v))
		}
	}
	return string(buf)
}

func (c *memoryCache) Get(_ context.Context, tier string, b *domain.Board) (*domain.Position, bool, error) {
	c.gets++
	mv, ok := c.entries[cacheKey(tier, b)]
	return mv, ok, nil
}

func (c *memoryCache) Set(_ context.Context, tier string, b *domain.Board, move *domain.Position) error {
	c.sets++
	c.entries[cacheKey(tier, b)] = move
	return nil
}

func testOptions() Options {
	return Options{
		BoardSizes: []int{domain.SmallBoard, domain.LargeBoard},
		Engine:     bot.DefaultConfig(),
		Seed:       17,
	}
}

func emptyGrid(n int) [][]int {
	grid := make([][]int, n)
	for i := range grid {
		grid[i] = make([]int, n)
	}
	return grid
}
