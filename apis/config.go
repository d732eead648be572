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

// Config carries read-only registry knobs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// ErasedPolicy selects how the default registry disambiguates an
	// erased lookup that matches more than one exact binding.
	ErasedPolicy ErasedPolicy

	// AllowNilBindings controls whether Bind accepts a nil instance.
	// If false, binding nil fails so that a successful Lookup never
	// hands the caller a nil implementation.
	AllowNilBindings bool
}

// ErasedPolicy controls disambiguation of erased (lossy) lookups.
//
// # Overview
//
// An erased Descriptor identifies a family of exact types: every
// instantiation of one generic type erases to the same key. When a
// registry holds bindings for more than one member of that family, an
// erased lookup has no single right answer, and the registry's policy
// decides what happens. ErasedPolicy enumerates the supported policies
// for the default registry implementation.
//
// # Contract
//
//   - The policy applies ONLY to erased lookups; exact lookups always
//     match exactly one binding or fail unresolved.
//   - A single matching binding is returned under every policy.
//   - Values are plain integers and safe for concurrent use.
type ErasedPolicy int

const (
	// ErasedAmbiguous fails an erased lookup with *AmbiguousError when
	// more than one exact binding matches.
	//
	// This is the default. Picking a silent winner would hide exactly
	// the imprecision the erased entry point is documented for; callers
	// who hit this error should resolve through a type reference
	// instead, or opt into an ordering policy deliberately.
	ErasedAmbiguous ErasedPolicy = iota

	// ErasedOldest returns the binding that was registered first among
	// the matches.
	//
	// Useful when a composition root registers a canonical default
	// instantiation before specialized ones.
	ErasedOldest

	// ErasedNewest returns the binding that was registered last among
	// the matches.
	//
	// Useful when later registrations are meant to override earlier
	// ones for lossy callers.
	ErasedNewest
)

// String returns the policy name for diagnostics.
func (p ErasedPolicy) String() string {
	switch p {
	case ErasedAmbiguous:
		return "ambiguous"
	case ErasedOldest:
		return "oldest"
	case ErasedNewest:
		return "newest"
	default:
		return "unknown"
	}
}
