/*
Package inspect lists the contents of element containers on a console.

Payloads are printed one per line, with their position and labels aligned
in columns. Alignment measures labels by their display width (UAX#11), so
East Asian wide characters line up as well.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package inspect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'elements'
func tracer() tracing.Trace {
	return tracing.Select("elements")
}
