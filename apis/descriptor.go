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
	"reflect"

	uref "github.com/nightwolfzor/servloc/utils/reflect"
)

// Descriptor is the universal lookup key of the resolution contract: an
// opaque, comparable, immutable value denoting one fully-specified type.
//
// # Semantics
//
//   - Two Descriptors are == iff they denote the same fully-specified
//     type at the same precision level. Generic instantiations are
//     distinct: the descriptor for List[string] never equals the one
//     for List[int].
//   - An erased Descriptor (see ErasedDescriptorForType) denotes only
//     the generic form of a type, with instantiation arguments dropped.
//     Many exact descriptors project onto one erased descriptor. An
//     erased descriptor is never == an exact one.
//   - Descriptors are values; they MUST NOT be mutated after
//     construction and are safe to share across goroutines.
//
// The zero Descriptor denotes no type at all and is rejected by every
// operation that consumes descriptors.
type Descriptor struct {
	// rtype is the exact runtime type; nil for erased descriptors.
	rtype reflect.Type
	// name is the canonical identity string.
	name string
	// erased marks descriptors whose generic arguments were dropped.
	erased bool
}

// DescriptorForType returns the exact Descriptor for t.
// A nil type yields an error; the zero Descriptor is never returned
// alongside a nil error.
func DescriptorForType(t reflect.Type) (Descriptor, error) {
	name, err := uref.Identity(t)
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{rtype: t, name: name}, nil
}

// ErasedDescriptorForType returns the erased Descriptor for t: generic
// type arguments are dropped, so every instantiation of one generic
// type yields the same descriptor. Documented lossy; see
// Registry.Lookup for how erased keys are disambiguated.
func ErasedDescriptorForType(t reflect.Type) (Descriptor, error) {
	name, err := uref.ErasedIdentity(t)
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{name: name, erased: true}, nil
}

// Type returns the exact runtime type this descriptor denotes, or nil
// for erased and zero descriptors.
func (d Descriptor) Type() reflect.Type {
	return d.rtype
}

// Erased reports whether the descriptor dropped generic arguments.
func (d Descriptor) Erased() bool {
	return d.erased
}

// IsZero reports whether d is the zero Descriptor (denoting no type).
func (d Descriptor) IsZero() bool {
	return d == Descriptor{}
}

// Identity returns the canonical identity string. Exact descriptors of
// distinct fully-specified types have distinct identities; an erased
// descriptor shares its identity with every instantiation it covers.
func (d Descriptor) Identity() string {
	return d.name
}

// String returns the canonical identity, suffixed for erased
// descriptors so failure messages distinguish the two precision levels.
func (d Descriptor) String() string {
	if d.IsZero() {
		return "<none>"
	}
	if d.erased {
		return d.name + "[...]"
	}
	return d.name
}
