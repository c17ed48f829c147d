/*
Package textfile loads text files into ordered string containers.

Every line of a file becomes a string payload of a bytestr.Tree. The tree
keeps lines in byte order and holds every distinct line once. Clients may
subscribe to a Loader to follow the progress of long-running loads.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'elements'
func tracer() tracing.Trace {
	return tracing.Select("elements")
}
