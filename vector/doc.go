/*
Package vector provides numeric vector payloads for element containers.

A Vector owns a buffer of float64 elements. The package implements the
arithmetic the aggregation algorithms need (squared norm, element-wise
comparison, deep copy) and an Adapter implementing the ordering and
destruction contracts.

Squared norms are accumulated in extended precision, so comparing the norms
of long vectors or vectors with large elements does not suffer from
intermediate overflow or cancellation.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'elements'
func tracer() tracing.Trace {
	return tracing.Select("elements")
}
