package barrel

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/googol-search/googol/pkg/googolpb"
)

func newTestBarrel(t *testing.T) *Barrel {
	t.Helper()

	b, err := New(Config{
		Address:  "127.0.0.1:50052",
		Filepath: filepath.Join(t.TempDir(), "barrel.json"),
	}, log.NewNopLogger())
	require.NoError(t, err)
	return b
}

func indexReq(url string, words []string, outlinks []string) *googolpb.IndexRequest {
	return &googolpb.IndexRequest{
		Index: &googolpb.Index{
			Page:     &googolpb.Page{Url: url},
			Words:    words,
			Outlinks: outlinks,
		},
	}
}

func TestIndexThenSearch(t *testing.T) {
	b := newTestBarrel(t)
	ctx := context.Background()

	resp, err := b.Index(ctx, indexReq("https://x/", []string{"rust", "fast"}, nil))
	require.NoError(t, err)
	require.NotZero(t, resp.GetSizeBytes())

	_, err = b.Index(ctx, indexReq("https://y/", []string{"rust", "web"}, []string{"https://x/"}))
	require.NoError(t, err)

	search, err := b.Search(ctx, &googolpb.SearchRequest{Words: []string{"rust"}})
	require.NoError(t, err)
	assert.Equal(t, googolpb.GoogolStatus_SUCCESS, search.GetStatus())
	require.Len(t, search.GetPages(), 2)
	// x has one backlink and ranks first
	assert.Equal(t, "https://x/", search.GetPages()[0].GetUrl())
	assert.Equal(t, "https://y/", search.GetPages()[1].GetUrl())

	// intersection
	search, err = b.Search(ctx, &googolpb.SearchRequest{Words: []string{"rust", "web"}})
	require.NoError(t, err)
	require.Len(t, search.GetPages(), 1)
	assert.Equal(t, "https://y/", search.GetPages()[0].GetUrl())
}

func TestIndexDropsInvalidOutlinks(t *testing.T) {
	b := newTestBarrel(t)
	ctx := context.Background()

	_, err := b.Index(ctx, indexReq("https://x/", nil, []string{"https://y/", "::::", "no-scheme"}))
	require.NoError(t, err)

	resp, err := b.ConsultOutlinks(ctx, &googolpb.OutlinksRequest{Url: "https://x/"})
	require.NoError(t, err)
	assert.Equal(t, googolpb.GoogolStatus_SUCCESS, resp.GetStatus())
	assert.Equal(t, []string{"https://y/"}, resp.GetOutlinks())
}

func TestConsultInvalidURL(t *testing.T) {
	b := newTestBarrel(t)
	ctx := context.Background()

	backResp, err := b.ConsultBacklinks(ctx, &googolpb.BacklinksRequest{Url: "nope"})
	require.NoError(t, err)
	assert.Equal(t, googolpb.GoogolStatus_INVALID_URL, backResp.GetStatus())

	outResp, err := b.ConsultOutlinks(ctx, &googolpb.OutlinksRequest{Url: "nope"})
	require.NoError(t, err)
	assert.Equal(t, googolpb.GoogolStatus_INVALID_URL, outResp.GetStatus())
}

func TestIndexPersistsAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "barrel.json")
	ctx := context.Background()

	b, err := New(Config{Address: "127.0.0.1:50052", Filepath: path}, log.NewNopLogger())
	require.NoError(t, err)
	_, err = b.Index(ctx, indexReq("https://x/", []string{"rust"}, nil))
	require.NoError(t, err)

	// a fresh barrel on the same snapshot serves the same index
	b2, err := New(Config{Address: "127.0.0.1:50052", Filepath: path}, log.NewNopLogger())
	require.NoError(t, err)
	search, err := b2.Search(ctx, &googolpb.SearchRequest{Words: []string{"RUST"}})
	require.NoError(t, err)
	require.Len(t, search.GetPages(), 1)
}

func TestMalformedSnapshotIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "barrel.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := New(Config{Address: "127.0.0.1:50052", Filepath: path}, log.NewNopLogger())
	require.Error(t, err)
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	dir := t.TempDir()
	b, err := New(Config{
		Address:  "127.0.0.1:50052",
		Filepath: filepath.Join(dir, "missing", "barrel.json"), // parent does not exist
	}, log.NewNopLogger())
	require.NoError(t, err)
	ctx := context.Background()

	resp, err := b.Index(ctx, indexReq("https://x/", []string{"rust"}, nil))
	require.NoError(t, err)
	// no successful snapshot yet
	assert.Zero(t, resp.GetSizeBytes())

	// the write is still served from memory
	search, err := b.Search(ctx, &googolpb.SearchRequest{Words: []string{"rust"}})
	require.NoError(t, err)
	require.Len(t, search.GetPages(), 1)
}

func TestHealthAndStatus(t *testing.T) {
	b := newTestBarrel(t)
	ctx := context.Background()

	health, err := b.Health(ctx, &googolpb.HealthRequest{})
	require.NoError(t, err)
	assert.Contains(t, health.GetStatus(), "127.0.0.1:50052")

	status, err := b.Status(ctx, &googolpb.BarrelStatusRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", status.GetStatus())
}
