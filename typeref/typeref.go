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

// Package typeref captures type descriptors at the call site.
//
// Go reifies generic instantiations, so the descriptor for a
// fully-specified type — generic arguments included — is recoverable
// directly from a type parameter. On runtimes that erase generic
// arguments, the same capture requires the anonymous-subclass trick
// (reading the argument off the specialized subclass's metadata); here
// the carrier keeps the same shape and contract while the capture
// collapses to a single reflective read at construction.
//
// The capture runs exactly once, inside New, and the result is
// immutable. A carrier that skipped New (zero value, struct literal,
// nil receiver) holds no capture and fails deterministically rather
// than yielding an empty descriptor that would resolve against "no
// type" downstream.
package typeref

import (
	"reflect"

	"github.com/nightwolfzor/servloc/apis"
)

// TypeReference is a single-use carrier holding one captured
// Descriptor. Create it with New at the resolution call site, pass it
// to locator.ResolveRef, and discard it; the locator never retains it.
//
// The zero value holds no capture and is unusable; see Descriptor.
type TypeReference[T any] struct {
	desc apis.Descriptor
}

// New constructs a TypeReference specialized to T and runs descriptor
// capture. This is the only construction path that produces a usable
// carrier.
func New[T any]() *TypeReference[T] {
	return &TypeReference[T]{desc: Of[T]()}
}

// Descriptor returns the captured descriptor.
//
// It fails with *apis.MissingTypeParameterError when the carrier was
// obtained without going through New, reporting the concrete carrier
// type found so the offending construction site can be located. The
// check never silently returns an empty descriptor.
func (r *TypeReference[T]) Descriptor() (apis.Descriptor, error) {
	if r == nil || r.desc.IsZero() {
		return apis.Descriptor{}, &apis.MissingTypeParameterError{
			Carrier: reflect.TypeOf((*TypeReference[T])(nil)).Elem(),
		}
	}
	return r.desc, nil
}

// Of returns the exact Descriptor for the type parameter T, generic
// arguments included.
func Of[T any]() apis.Descriptor {
	d, err := apis.DescriptorForType(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		// Unreachable: reflect.TypeFor never yields a nil type.
		panic(err)
	}
	return d
}

// ErasedOf returns the erased Descriptor for the type parameter T:
// generic arguments are dropped, so ErasedOf[List[string]] equals
// ErasedOf[List[int]]. Documented lossy.
func ErasedOf[T any]() apis.Descriptor {
	d, err := apis.ErasedDescriptorForType(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		// Unreachable: reflect.TypeFor never yields a nil type.
		panic(err)
	}
	return d
}
