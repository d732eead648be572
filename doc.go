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

// Package servloc defines the resolution contract of a service locator:
// a registry mapping type descriptors to implementation instances, and
// the type-reference carrier that captures a generic descriptor at the
// call site.
//
// # Design
//
// The contract is built from two small parts, composed by delegation:
//
//   - Descriptor capture (typeref): given a type parameter, produce a
//     runtime-inspectable descriptor of that exact parameterized type
//     ("List[string]", not just "List"). Go reifies generic
//     instantiations, so capture is a single reflective read; the
//     carrier shape is kept so the contract survives ports to
//     type-erasing runtimes unchanged.
//
//   - Resolution (locator): one canonical operation,
//     Locator.Resolve(Descriptor), plus convenience entry points that
//     each compute a descriptor and delegate to the canonical
//     operation. Keeping exactly one true resolution primitive makes
//     divergent semantics between entry points impossible.
//
// The entry points form an explicit precision hierarchy, most to least
// precise:
//
//  1. locator.ResolveRef — by captured type reference. Never loses
//     generic arguments; the safe path on every runtime.
//  2. locator.Resolve — by compile-time type parameter, full
//     reflective descriptor. Safe here; carries the documented
//     thread-safety hazard for ports whose reflective type facility
//     is not concurrency-safe.
//  3. locator.ResolveErased — by compile-time type parameter with
//     generic arguments dropped. Documented lossy.
//  4. locator.ResolveType — by explicit type token.
//
// A failed precise lookup never falls back to a lossy one: each entry
// point is an independent, explicit request.
//
// # Composition
//
// There is deliberately no ambient global locator. New returns the
// (Locator, Registry) pair as explicit values for the composition root
// to thread through; independent compositions in one process each hold
// their own pair:
//
//	loc, reg := servloc.New()
//	if err := servloc.Bind[Cache](reg, redisCache); err != nil {
//		// handle conflicting binding
//	}
//	cache, err := locator.Resolve[Cache](loc)
//
// For generic services, capture the instantiation with a type
// reference:
//
//	ref := typeref.New[Repository[User]]()
//	repo, err := locator.ResolveRef(loc, ref)
//
// # Concurrency model
//
// The contract owns no concurrency primitives: descriptors are
// immutable values, capture runs once at carrier construction, and the
// locator holds no mutable state beyond the registry it delegates to.
// The default registry serves exact lookups from a lock-free read path
// and guards writes with a mutex. The only concurrency concern in the
// contract is the documented hazard on entry point (2) above, together
// with (1) as the safe alternative.
//
// # Failure modes
//
// All failures are synchronous, surfaced immediately, and carry enough
// to diagnose without inspecting internals: apis.UnresolvedError names
// the exact requested descriptor, apis.AmbiguousError the descriptor
// and candidate count, apis.MissingTypeParameterError the carrier type
// that skipped capture, and apis.ErrNilTypeReference rejects a nil
// carrier before any lookup. Nothing is swallowed, logged-and-ignored,
// or retried.
//
// # Scope
//
// servloc is intentionally a lookup protocol, not a DI container: no
// binding DSL, no auto-wiring, no scopes or lifecycles. The registry
// shipped in registry/ is one collaborator implementation; anything
// satisfying apis.Registry can stand in for it.
package servloc
