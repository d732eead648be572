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

// Registry is the external collaborator that owns Descriptor → instance
// bindings. The resolution contract consumes a single capability from
// it: given a Descriptor, return the bound instance or signal that none
// or multiple bindings exist. Binding storage, registration policy, and
// lifecycle are entirely the registry's concern.
//
// # Contract
//
//   - Lookup with an exact Descriptor MUST return the instance bound
//     under that exact key, or an *UnresolvedError carrying the
//     requested descriptor.
//   - Lookup with an erased Descriptor matches every exact binding that
//     shares the erased identity; how multiple matches are
//     disambiguated is the registry's own policy (see
//     Config.ErasedPolicy for the default implementation), signalled
//     with *AmbiguousError when no single binding can be picked.
//   - Bind accepts exact descriptors only; erased descriptors identify
//     a family of types, not a bindable implementation.
//   - All methods MUST be safe for concurrent use.
type Registry interface {
	// Bind associates an exact Descriptor with an implementation
	// instance. Implementations should be idempotent for the same
	// (descriptor, instance) pair; conflicting re-binds return an error.
	Bind(d Descriptor, instance any) error
	// Lookup returns the instance bound for d, *UnresolvedError if no
	// binding matches, or *AmbiguousError if more than one does and the
	// registry's policy cannot pick one.
	Lookup(d Descriptor) (any, error)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of bound entries.
	Count() int
	// Reset clears all bindings.
	Reset()
}

// Entry is a single (descriptor, instance) binding in a Registry snapshot.
type Entry struct {
	// Descriptor is the exact bound key.
	Descriptor Descriptor
	// Instance is the bound implementation.
	Instance any
}
