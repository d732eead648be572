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

package locator

import (
	"reflect"

	"github.com/nightwolfzor/servloc/apis"
	"github.com/nightwolfzor/servloc/typeref"
)

// The entry points below are pure projections onto Locator.Resolve,
// ordered from most to least precise. Each is an independent request:
// a failed precise lookup never silently degrades to a lossy one.

// ResolveRef resolves using ref's captured descriptor verbatim — the
// only entry point guaranteed not to lose generic argument information,
// and the recommended path whenever a service may be resolved
// concurrently on a port whose reflective facility isn't thread-safe.
//
// A nil ref fails with apis.ErrNilTypeReference before any lookup is
// attempted.
func ResolveRef[T any](l apis.Locator, ref *typeref.TypeReference[T]) (T, error) {
	var zero T
	if ref == nil {
		return zero, apis.ErrNilTypeReference
	}
	d, err := ref.Descriptor()
	if err != nil {
		return zero, err
	}
	return as[T](l, d)
}

// Resolve resolves using the richest reflective descriptor of the
// compile-time type parameter T, generic arguments included.
//
// Thread safety: Go's runtime type metadata is safe for concurrent
// reflective reads, so this entry point is safe to call from multiple
// goroutines here. Ports to runtimes whose generic type facility is not
// thread-safe must hold a lock around this call or prefer ResolveRef.
func Resolve[T any](l apis.Locator) (T, error) {
	return as[T](l, typeref.Of[T]())
}

// ResolveErased resolves using only the erased form of T: generic
// arguments are silently dropped, so ResolveErased for List[string] and
// for List[int] issue the same request, answered by the registry's
// erased-key policy. Lossy; prefer ResolveRef or Resolve whenever the
// instantiation matters.
func ResolveErased[T any](l apis.Locator) (T, error) {
	return as[T](l, typeref.ErasedOf[T]())
}

// ResolveType resolves by an explicit type token, treated as an exact
// non-generic descriptor.
func ResolveType(l apis.Locator, t reflect.Type) (any, error) {
	d, err := apis.DescriptorForType(t)
	if err != nil {
		return nil, err
	}
	return l.Resolve(d)
}

// as funnels a typed entry point through the canonical operation and
// type-asserts the result.
func as[T any](l apis.Locator, d apis.Descriptor) (T, error) {
	var zero T
	v, err := l.Resolve(d)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, &apis.TypeMismatchError{
			Descriptor: d,
			Want:       reflect.TypeOf((*T)(nil)).Elem(),
			Got:        reflect.TypeOf(v),
		}
	}
	return typed, nil
}
