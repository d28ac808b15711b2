package gateway

import (
	"net/url"
)

// EnqueueResult describes the outcome of admitting a URL to the frontier.
type EnqueueResult int

const (
	// Enqueued means the URL was appended to the queue.
	Enqueued EnqueueResult = iota
	// AlreadySeen means the URL was enqueued before; dedup persists after
	// dequeue.
	AlreadySeen
	// Rejected means the domain filter refused the URL's host.
	Rejected
)

// Frontier is the deduplicated FIFO of URLs awaiting crawl. It is not
// safe for concurrent use; the gateway serializes access. Blocking
// semantics are layered on top with a queue notification, not here.
type Frontier struct {
	queue     []string
	seen      map[string]struct{}
	whitelist map[string]struct{}
	blacklist map[string]struct{}
}

func NewFrontier(filter DomainsFilter) *Frontier {
	f := &Frontier{
		seen:      make(map[string]struct{}),
		whitelist: make(map[string]struct{}),
		blacklist: make(map[string]struct{}),
	}
	for _, h := range filter.Whitelist {
		f.whitelist[h] = struct{}{}
	}
	for _, h := range filter.Blacklist {
		f.blacklist[h] = struct{}{}
	}
	return f
}

// Admits applies the domain filter: blacklisted hosts are refused and,
// when a whitelist is configured, only whitelisted hosts pass.
func (f *Frontier) Admits(host string) bool {
	if _, ok := f.blacklist[host]; ok {
		return false
	}
	if len(f.whitelist) == 0 {
		return true
	}
	_, ok := f.whitelist[host]
	return ok
}

// Enqueue admits u and returns the outcome plus the current queue
// snapshot.
func (f *Frontier) Enqueue(u *url.URL) (EnqueueResult, []string) {
	if !f.Admits(u.Hostname()) {
		return Rejected, f.Snapshot()
	}

	s := u.String()
	if _, ok := f.seen[s]; ok {
		return AlreadySeen, f.Snapshot()
	}

	f.queue = append(f.queue, s)
	f.seen[s] = struct{}{}
	return Enqueued, f.Snapshot()
}

// Dequeue pops the oldest URL. The seen-set keeps the URL so it is never
// enqueued twice.
func (f *Frontier) Dequeue() (string, bool) {
	if len(f.queue) == 0 {
		return "", false
	}
	u := f.queue[0]
	f.queue = f.queue[1:]
	return u, true
}

// ClearSeen rebuilds the seen-set from the queued URLs, forgetting every
// already-dequeued one. Manual operator action.
func (f *Frontier) ClearSeen() {
	f.seen = make(map[string]struct{}, len(f.queue))
	for _, u := range f.queue {
		f.seen[u] = struct{}{}
	}
}

func (f *Frontier) Snapshot() []string {
	out := make([]string, len(f.queue))
	copy(out, f.queue)
	return out
}

func (f *Frontier) Len() int {
	return len(f.queue)
}
