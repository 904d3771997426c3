// Package stats records finished games and summarises the play history.
package stats
