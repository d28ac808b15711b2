package googoldb

import (
	"sort"
	"time"
)

// Page is one indexed document. Two records for the same URL on the same
// UTC day are the same page.
type Page struct {
	Url       string    `json:"url"`
	Title     string    `json:"title,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	Icon      string    `json:"icon,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Category  string    `json:"category,omitempty"`
}

// Same reports page identity: equal URL and equal UTC calendar day.
func (p Page) Same(o Page) bool {
	if p.Url != o.Url {
		return false
	}
	py, pm, pd := p.Timestamp.UTC().Date()
	oy, om, od := o.Timestamp.UTC().Date()
	return py == oy && pm == om && pd == od
}

// PageSet holds pages deduplicated by (url, day) and serializes ordered by
// timestamp ascending.
type PageSet []Page

// Insert adds p unless an identical page is already present.
func (ps *PageSet) Insert(p Page) {
	for _, existing := range *ps {
		if existing.Same(p) {
			return
		}
	}
	*ps = append(*ps, p)
}

func (ps PageSet) Len() int {
	return len(ps)
}

func (ps PageSet) MarshalJSON() ([]byte, error) {
	sorted := make([]Page, len(ps))
	copy(sorted, ps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return json.Marshal([]Page(sorted))
}

func (ps *PageSet) UnmarshalJSON(data []byte) error {
	var pages []Page
	if err := json.Unmarshal(data, &pages); err != nil {
		return err
	}
	out := make(PageSet, 0, len(pages))
	for _, p := range pages {
		out.Insert(p)
	}
	*ps = out
	return nil
}
