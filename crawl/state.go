package crawl

import "slices"

// State is the explicit state of a recursive crawl. It is threaded through
// Discoverer.Step so each transition can be observed and tested.
//
// Visited and the frontier never share an address: an address is marked
// visited when it is popped, and visited addresses are never pushed again.
type State struct {
	// Visited holds every address popped from the frontier.
	Visited map[string]struct{}

	// Frontier holds addresses waiting to be rendered.
	Frontier *Frontier

	// Discovered holds the addresses that passed content detection.
	Discovered map[string]struct{}

	// Rendered counts pages fetched so far.
	Rendered int
}

// NewState returns the initial crawl state seeded with baseURL.
func NewState(baseURL string) *State {
	s := &State{
		Visited:    make(map[string]struct{}),
		Frontier:   NewFrontier(),
		Discovered: make(map[string]struct{}),
	}
	s.Frontier.Push(baseURL)
	return s
}

// IsVisited reports whether url has been popped from the frontier.
func (s *State) IsVisited(url string) bool {
	_, ok := s.Visited[url]
	return ok
}

// Done reports whether the frontier is exhausted.
func (s *State) Done() bool {
	return s.Frontier.Len() == 0
}

// Result returns the discovered addresses sorted lexicographically.
func (s *State) Result() []string {
	urls := make([]string, 0, len(s.Discovered))
	for u := range s.Discovered {
		urls = append(urls, u)
	}
	slices.Sort(urls)
	return urls
}
