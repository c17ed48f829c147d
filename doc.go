/*
Package elements connects concrete payload types to a generic ordered
container.

Elements

A container, such as the B+ tree of package btree, stores payloads it does
not understand. Everything it needs to know about them is handed in through
capability contracts:

  - Ordering places a payload relative to others,
  - Destructor releases a payload once the container is done with it,
  - Visitor folds over payloads during traversal.

Sub-packages implement the contracts for concrete payloads: package bytestr
for NUL-terminated byte strings, package vector for numeric vectors. Package
aggregate builds algorithms, for example the search for the vector of maximal
norm, on top of nothing but a container's traversal primitive.

Containers are only ever accessed through the Container interface:

	type Container[T any] interface {
	    IsEmpty() bool
	    ForEach(visit func(T) bool) bool
	}

Results of algorithms which may have nothing to report are wrapped in a
Result, which tells apart an absent input, an empty collection and a found
value.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package elements

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ElementError is an error type for the elements module
type ElementError string

func (e ElementError) Error() string {
	return string(e)
}

// ErrAbsentInput is flagged whenever a required argument is missing, e.g. a
// nil payload, accumulator or container.
const ErrAbsentInput = ElementError("elements: absent input")

// ErrEmptyCollection is flagged whenever an algorithm needing at least one
// payload is run on an empty container.
const ErrEmptyCollection = ElementError("elements: empty collection")
