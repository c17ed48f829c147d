/*
Package aggregate implements algorithms over element containers.

Algorithms see nothing of a container but its traversal primitive, see
elements.Container. They are therefore independent of the container's
implementation, be it a B+ tree or a plain slice.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package aggregate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'elements'
func tracer() tracing.Trace {
	return tracing.Select("elements")
}
