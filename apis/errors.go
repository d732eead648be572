/*
   Copyright 2026 The servloc Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNilTypeReference is returned when a nil type reference is passed
	// to the type-reference resolution entry point. Detected before any
	// registry interaction; always a caller bug.
	ErrNilTypeReference = errors.New("servloc: type reference can't be nil")

	// ErrEmptyDescriptor is returned when a zero Descriptor reaches an
	// operation that requires one. Detected before any registry
	// interaction; always a caller bug.
	ErrEmptyDescriptor = errors.New("servloc: empty type descriptor")
)

// UnresolvedError reports that the registry holds no binding for the
// requested descriptor. The Descriptor field carries the exact key that
// was requested, unmodified, regardless of which entry point initiated
// the call.
type UnresolvedError struct {
	Descriptor Descriptor
}

// Error implements error.
func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("servloc: no binding registered for %s", e.Descriptor)
}

// AmbiguousError reports that the registry's disambiguation policy
// could not pick one binding for the requested descriptor.
type AmbiguousError struct {
	// Descriptor is the requested key.
	Descriptor Descriptor
	// Candidates is the number of bindings that matched.
	Candidates int
}

// Error implements error.
func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("servloc: %d bindings match %s", e.Candidates, e.Descriptor)
}

// MissingTypeParameterError reports that a type reference carrier was
// obtained without running descriptor capture (zero value or struct
// literal instead of typeref.New), so no type argument could be
// recovered. Carrier is the concrete carrier type actually found, so
// the caller can see which construction site skipped the capture step.
type MissingTypeParameterError struct {
	Carrier reflect.Type
}

// Error implements error.
func (e *MissingTypeParameterError) Error() string {
	return fmt.Sprintf("servloc: %v holds no captured type argument; construct it with typeref.New", e.Carrier)
}

// TypeMismatchError reports that the instance bound under a descriptor
// does not have the type the caller asked for. This indicates a
// registry integrity failure (a binding registered under the wrong
// descriptor), not a lookup miss.
type TypeMismatchError struct {
	// Descriptor is the requested key.
	Descriptor Descriptor
	// Want is the type the caller requested.
	Want reflect.Type
	// Got is the dynamic type of the bound instance.
	Got reflect.Type
}

// Error implements error.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("servloc: binding for %s has type %v, want %v", e.Descriptor, e.Got, e.Want)
}
