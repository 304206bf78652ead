package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_watchlist/internal/app/config"
	"stock_watchlist/internal/app/di"
	"stock_watchlist/internal/feature/quotes/domain/entity"
)

type stubRemote struct{}

func (stubRemote) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	return entity.NewQuote(symbol, 101, 100), nil
}

func (stubRemote) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	return []entity.SearchResult{
		{Symbol: "NFLX", Name: "Netflix Inc"},
		{Symbol: "NET", Name: "Cloudflare Inc"},
	}, nil
}

func stubBuilder(ctx context.Context, cfg *config.Config) (*di.App, error) {
	return di.BuildWithRemote(ctx, cfg, stubRemote{})
}

func setupConfig(t *testing.T) string {
	t.Helper()
	for _, k := range []string{"WATCHLIST_STORE", "WATCHLIST_FILE", "SEARCH_CACHE", "BATCH_DELAY", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "store:\n  type: file\n  file_path: " + filepath.Join(dir, "watchlist.json") +
		"\nsearch_cache:\n  type: none\nwatchlist:\n  batch_delay: 1ms\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(cfgPath string, args ...string) (string, error) {
	cmd := newRootCmd(stubBuilder)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands_List(t *testing.T) {
	cfg := setupConfig(t)

	out, err := run(cfg, "list", "--select", "msft")
	require.NoError(t, err)

	for _, s := range []string{"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA", "META", "NVDA", "NFLX"} {
		assert.Contains(t, out, s)
	}
	assert.Contains(t, out, "▸ MSFT")
	assert.Contains(t, out, "+1.00 (+1.00%)")
}

func TestCommands_AddRemove(t *testing.T) {
	cfg := setupConfig(t)

	_, err := run(cfg, "add", "NFLX")
	assert.ErrorContains(t, err, "already on the watchlist")

	out, err := run(cfg, "remove", "nflx")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed NFLX")

	_, err = run(cfg, "rm", "NFLX")
	assert.ErrorContains(t, err, "not on the watchlist")

	out, err = run(cfg, "add", "nflx", "--name", "Netflix, Inc.")
	require.NoError(t, err)
	assert.Contains(t, out, "Added NFLX")
	assert.Contains(t, out, "Netflix, Inc.")
	assert.Contains(t, out, "▸ NFLX")
}

func TestCommands_Search(t *testing.T) {
	cfg := setupConfig(t)

	out, err := run(cfg, "search", "ne")
	require.NoError(t, err)
	assert.Contains(t, out, "Cloudflare Inc")
	assert.NotContains(t, out, "Netflix Inc")

	_, err = run(cfg, "search", "n")
	assert.ErrorContains(t, err, "at least 2 characters")

	_, err = run(cfg, "search", "é")
	assert.ErrorContains(t, err, "at least 2 characters")
}

func TestCommands_Search_AllTracked(t *testing.T) {
	cfg := setupConfig(t)

	_, err := run(cfg, "add", "NET", "--name", "Cloudflare Inc")
	require.NoError(t, err)

	out, err := run(cfg, "search", "ne")
	require.NoError(t, err)
	assert.Contains(t, out, "All stocks already added")
}

func TestCommands_Quote(t *testing.T) {
	cfg := setupConfig(t)

	out, err := run(cfg, "quote", "aapl")
	require.NoError(t, err)
	assert.Contains(t, out, "AAPL")
	assert.Contains(t, out, "$101.00")
}

func TestCommands_Chart(t *testing.T) {
	cfg := setupConfig(t)

	out, err := run(cfg, "chart", "AAPL", "-p", "1mo", "--height", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "AAPL · 1M")
	assert.Contains(t, out, "Simulated 1M data (every 1.5 days)")
	assert.Equal(t, 20, strings.Count(out, "●"))

	_, err = run(cfg, "chart", "AAPL", "-p", "2w")
	assert.ErrorIs(t, err, entity.ErrInvalidPeriod)
}

func TestCommands_InvalidConfig(t *testing.T) {
	cfg := setupConfig(t)
	t.Setenv("WATCHLIST_STORE", "s3")

	_, err := run(cfg, "list")
	assert.ErrorContains(t, err, "invalid config")
}
