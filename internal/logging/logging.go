// Package logging configures the process-wide standard logger.
package logging

import (
	"io"
	"log"
	"os"
)

// Init directs log output to w (stdout when nil) with microsecond timestamps.
func Init(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
