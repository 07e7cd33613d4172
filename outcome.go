package docscrape

// OutcomeStatus classifies how a page was handled.
type OutcomeStatus string

// Page outcome statuses.
const (
	OutcomeSuccess   OutcomeStatus = "success"
	OutcomeNoContent OutcomeStatus = "skipped-no-content"
	OutcomeFailed    OutcomeStatus = "failed"
)

// PageOutcome records the result of processing one address. Pages that do
// not contribute a section still get an outcome, so omissions from the
// document are observable.
type PageOutcome struct {
	URL    string
	Status OutcomeStatus
	Err    error

	// Bytes and Hash describe the converted body of successful pages.
	Bytes int
	Hash  string
}

// ProgressEvent reports progress while pages are processed.
type ProgressEvent struct {
	Outcome   PageOutcome
	Completed int
	Total     int
}

// ProgressFunc is called as pages are processed.
type ProgressFunc func(ProgressEvent)
