// Package googoldb implements the index store a barrel serves: an inverted
// index over page words, a forward URL->words index, and the link graph
// (backlinks/outlinks), snapshotted to a single JSON file on every write.
package googoldb

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

type Store struct {
	IndexedPages PageSet         `json:"indexed_pages"`
	URLToPage    map[string]Page `json:"url2pages"`
	Index        map[string]Set  `json:"index"`        // word -> urls containing it
	InvertIndex  map[string]Set  `json:"invert_index"` // url -> words on the page
	Backlinks    map[string]Set  `json:"backlinks"`
	Outlinks     map[string]Set  `json:"outlinks"`

	// not persisted
	path      string
	sizeBytes uint64
}

func NewStore(path string) *Store {
	return &Store{
		URLToPage:   make(map[string]Page),
		Index:       make(map[string]Set),
		InvertIndex: make(map[string]Set),
		Backlinks:   make(map[string]Set),
		Outlinks:    make(map[string]Set),
		path:        path,
	}
}

// Load reads the snapshot at path. A missing file yields an empty store
// bound to path; a malformed file is an error the caller treats as fatal.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewStore(path), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading index snapshot %s", path)
	}

	s := NewStore(path)
	if err := json.Unmarshal(data, s); err != nil {
		return nil, errors.Wrapf(err, "parsing index snapshot %s", path)
	}
	s.sizeBytes = uint64(len(data))
	return s, nil
}

// Store indexes one page: set-union semantics, never removes.
func (s *Store) Store(page Page, words []string, outlinks []string) {
	s.IndexedPages.Insert(page)
	s.URLToPage[page.Url] = page

	for _, w := range words {
		w = strings.ToLower(w)
		if s.Index[w] == nil {
			s.Index[w] = NewSet()
		}
		s.Index[w].Add(page.Url)

		if s.InvertIndex[page.Url] == nil {
			s.InvertIndex[page.Url] = NewSet()
		}
		s.InvertIndex[page.Url].Add(w)
	}

	for _, o := range outlinks {
		if s.Outlinks[page.Url] == nil {
			s.Outlinks[page.Url] = NewSet()
		}
		s.Outlinks[page.Url].Add(o)

		if s.Backlinks[o] == nil {
			s.Backlinks[o] = NewSet()
		}
		s.Backlinks[o].Add(page.Url)
	}
}

// Search returns the pages containing every given word. Case-insensitive,
// empty input or any unknown word yields an empty result.
func (s *Store) Search(words []string) []Page {
	if len(words) == 0 {
		return nil
	}

	postings := make([]Set, 0, len(words))
	for _, w := range words {
		p, ok := s.Index[strings.ToLower(w)]
		if !ok {
			return nil
		}
		postings = append(postings, p)
	}

	// intersect in sorted-url order so results are deterministic
	var pages []Page
	for _, url := range postings[0].List() {
		inAll := true
		for _, p := range postings[1:] {
			if !p.Has(url) {
				inAll = false
				break
			}
		}
		if !inAll {
			continue
		}
		if page, ok := s.URLToPage[url]; ok {
			pages = append(pages, page)
		}
	}
	return pages
}

// SearchByRelevance is Search ordered by backlink count, most linked first.
func (s *Store) SearchByRelevance(words []string) []Page {
	pages := s.Search(words)
	sort.SliceStable(pages, func(i, j int) bool {
		return s.Backlinks[pages[i].Url].Len() > s.Backlinks[pages[j].Url].Len()
	})
	return pages
}

func (s *Store) ConsultBacklinks(url string) []string {
	return s.Backlinks[url].List()
}

func (s *Store) ConsultOutlinks(url string) []string {
	return s.Outlinks[url].List()
}

// Save serializes the whole store and atomically replaces the snapshot
// file. Returns the bytes written.
func (s *Store) Save() (uint64, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return 0, errors.Wrap(err, "serializing index snapshot")
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return 0, errors.Wrap(err, "creating snapshot temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return 0, errors.Wrap(err, "writing snapshot")
	}
	if err := tmp.Close(); err != nil {
		return 0, errors.Wrap(err, "closing snapshot")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return 0, errors.Wrap(err, "replacing snapshot")
	}

	s.sizeBytes = uint64(len(data))
	return s.sizeBytes, nil
}

// SizeBytes is the size of the last snapshot read or written.
func (s *Store) SizeBytes() uint64 {
	return s.sizeBytes
}

func (s *Store) Path() string {
	return s.path
}
