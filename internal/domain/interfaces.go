package domain

// ResultStore persists finished games.
type ResultStore interface {
	SaveResult(r Result) error
	ListResults() ([]Result, error)
	ClearResults() error
}

// StatsService records games and summarises the history.
type StatsService interface {
	Record(r Result) error
	Summarize() (Summary, error)
	Reset() error
}
