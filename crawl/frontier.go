package crawl

// Frontier is the FIFO queue of addresses discovered but not yet rendered.
// An address is queued at most once at a time. Frontier is not safe for
// concurrent use; the crawl loop owns it.
type Frontier struct {
	queue  []string
	queued map[string]struct{}
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{queued: make(map[string]struct{})}
}

// Push appends url to the back of the queue.
// Returns false if url is already queued.
func (f *Frontier) Push(url string) bool {
	if _, ok := f.queued[url]; ok {
		return false
	}
	f.queued[url] = struct{}{}
	f.queue = append(f.queue, url)
	return true
}

// Pop removes and returns the address at the front of the queue.
// Returns false when the queue is empty.
func (f *Frontier) Pop() (string, bool) {
	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue[0] = ""
	f.queue = f.queue[1:]
	delete(f.queued, url)
	return url, true
}

// Contains reports whether url is queued.
func (f *Frontier) Contains(url string) bool {
	_, ok := f.queued[url]
	return ok
}

// Len returns the number of queued addresses.
func (f *Frontier) Len() int {
	return len(f.queue)
}
