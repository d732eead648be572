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

// Locator is the canonical resolution operation of the service locator
// contract.
//
// # Overview
//
// Locator exposes exactly one true resolution primitive: Resolve keyed
// by a Descriptor. Every convenience entry point (by type reference, by
// inferred type parameter, by erased type parameter, by explicit type
// token — see the locator package) is a pure projection of its input
// onto a Descriptor followed by a call to Resolve. This keeps the
// resolution semantics of all entry points identical by construction.
//
// # Contract
//
//   - Resolve MUST reject a zero Descriptor with ErrEmptyDescriptor
//     before any registry interaction.
//   - Resolve MUST surface the registry's UnresolvedError and
//     AmbiguousError to the caller unchanged: no retries, no logging-
//     and-swallowing, and no fallback onto a lossier key when a precise
//     lookup fails.
//   - Implementations MUST be safe for concurrent use; resolution holds
//     no mutable state of its own beyond the registry it delegates to.
//
// # Composition
//
// A Locator is an explicit value threaded through composition roots.
// This package deliberately provides no ambient global instance: when
// multiple independent compositions coexist in one process, each holds
// its own Locator, which keeps resolution deterministic per composition
// root.
type Locator interface {
	// Resolve looks up the exact descriptor in the registry and returns
	// the bound implementation instance.
	Resolve(d Descriptor) (any, error)
}
