package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger returns the huebridge logger: debug output to w when verbose,
// otherwise a logger that discards everything.
func newLogger(verbose bool, w io.Writer) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "huebridge",
			Output: w,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "huebridge",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}
