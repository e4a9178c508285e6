package panzoom

import (
	"fmt"
	"io"
	"os"
)

// debugOutput receives debug diagnostics. Replaced in tests.
var debugOutput io.Writer = os.Stderr

// debugf prints a controller diagnostic when debug mode is on.
func (c *Controller) debugf(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOutput, "[panzoom] "+format+"\n", args...)
}
