// Package store provides file-based persistence for primers.
//
// ResultFileStore implements domain.ResultStore, serialising the history of
// finished games as JSON under the configured home directory. Writes go
// through a temp file and rename so an interrupted write never leaves a
// truncated history behind. All methods are concurrency-safe via internal
// locking.
package store
