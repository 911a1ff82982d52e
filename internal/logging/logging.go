// Package logging provides the error-stream debug logger gated by the
// LOG environment variable (e.g. LOG=debug), per spec.md §6.
package logging

import (
	"io"
	"log"
	"os"
)

// Debug and Scanner write to stderr with timestamps once LOG is set to
// any non-empty value; otherwise they discard everything, so call sites
// never need to check Enabled themselves.
var (
	Debug   *log.Logger
	Scanner *log.Logger
	Enabled bool
)

func init() {
	if os.Getenv("LOG") == "" {
		Debug = log.New(io.Discard, "", 0)
		Scanner = log.New(io.Discard, "", 0)
		return
	}

	Enabled = true
	Debug = log.New(os.Stderr, "[DEBUG] ", log.Ldate|log.Ltime)
	Scanner = log.New(os.Stderr, "[SCANNER] ", log.Ldate|log.Ltime)
}
