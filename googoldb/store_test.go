package googoldb

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPage(url string) Page {
	return Page{
		Url:       url,
		Title:     "title of " + url,
		Timestamp: time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestStoreIndexesAreMutualInverses(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "index.json"))
	s.Store(testPage("https://x/"), []string{"Rust", "fast", "fast"}, nil)
	s.Store(testPage("https://y/"), []string{"rust", "web"}, nil)

	for word, urls := range s.Index {
		for url := range urls {
			assert.True(t, s.InvertIndex[url].Has(word), "invert_index missing (%s, %s)", url, word)
		}
	}
	for url, words := range s.InvertIndex {
		for word := range words {
			assert.True(t, s.Index[word].Has(url), "index missing (%s, %s)", word, url)
		}
	}
}

func TestStoreLinkGraphIsSymmetric(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "index.json"))
	s.Store(testPage("https://x/"), nil, []string{"https://y/", "https://z/"})
	s.Store(testPage("https://y/"), nil, []string{"https://z/"})

	for url, outs := range s.Outlinks {
		for o := range outs {
			assert.True(t, s.Backlinks[o].Has(url))
		}
	}
	for url, backs := range s.Backlinks {
		for b := range backs {
			assert.True(t, s.Outlinks[b].Has(url))
		}
	}

	assert.Equal(t, []string{"https://x/", "https://y/"}, s.ConsultBacklinks("https://z/"))
	assert.Equal(t, []string{"https://y/", "https://z/"}, s.ConsultOutlinks("https://x/"))
	assert.Empty(t, s.ConsultBacklinks("https://unknown/"))
}

func TestSearch(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "index.json"))
	s.Store(testPage("https://x/"), []string{"rust", "fast"}, nil)
	s.Store(testPage("https://y/"), []string{"rust", "web"}, []string{"https://x/"})

	tests := []struct {
		name  string
		words []string
		want  []string
	}{
		{"single word hits both pages", []string{"rust"}, []string{"https://x/", "https://y/"}},
		{"multi word is an intersection", []string{"rust", "web"}, []string{"https://y/"}},
		{"case insensitive", []string{"RUST"}, []string{"https://x/", "https://y/"}},
		{"unknown word empties the result", []string{"rust", "nope"}, nil},
		{"empty input", nil, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var urls []string
			for _, p := range s.Search(tc.words) {
				urls = append(urls, p.Url)
			}
			assert.Equal(t, tc.want, urls)
		})
	}
}

func TestSearchByRelevanceSortsByBacklinks(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "index.json"))
	s.Store(testPage("https://x/"), []string{"rust", "fast"}, nil)
	s.Store(testPage("https://y/"), []string{"rust", "web"}, []string{"https://x/"})

	pages := s.SearchByRelevance([]string{"rust"})
	require.Len(t, pages, 2)
	// x has one backlink, y has none
	assert.Equal(t, "https://x/", pages[0].Url)
	assert.Equal(t, "https://y/", pages[1].Url)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")

	s := NewStore(path)
	s.Store(testPage("https://x/"), []string{"rust", "fast"}, []string{"https://y/"})
	s.Store(testPage("https://y/"), []string{"web"}, nil)

	n, err := s.Save()
	require.NoError(t, err)
	require.NotZero(t, n)
	require.Equal(t, n, s.SizeBytes())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s.IndexedPages, loaded.IndexedPages)
	assert.Equal(t, s.URLToPage, loaded.URLToPage)
	assert.Equal(t, s.Index, loaded.Index)
	assert.Equal(t, s.InvertIndex, loaded.InvertIndex)
	assert.Equal(t, s.Backlinks, loaded.Backlinks)
	assert.Equal(t, s.Outlinks, loaded.Outlinks)
	assert.Equal(t, n, loaded.SizeBytes())
}

func TestLoadMissingFileYieldsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())
	assert.Zero(t, s.SizeBytes())
	assert.Empty(t, s.Search([]string{"anything"}))
}

func TestLoadMalformedSnapshotFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestStoreIsIdempotentPerDay(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "index.json"))
	p := testPage("https://x/")
	s.Store(p, []string{"rust"}, []string{"https://y/"})
	s.Store(p, []string{"rust"}, []string{"https://y/"})

	assert.Equal(t, 1, s.IndexedPages.Len())
	assert.Equal(t, 1, s.Index["rust"].Len())
	assert.Equal(t, 1, s.Outlinks["https://x/"].Len())

	// a record for the same URL on another day is a distinct page
	later := p
	later.Timestamp = p.Timestamp.Add(48 * time.Hour)
	s.Store(later, nil, nil)
	assert.Equal(t, 2, s.IndexedPages.Len())
	// but url2pages tracks the latest record
	assert.Equal(t, later.Timestamp, s.URLToPage["https://x/"].Timestamp)
}
