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

package registry

import (
	"errors"
	"reflect"
	"sync"

	"github.com/nightwolfzor/servloc/apis"
	uref "github.com/nightwolfzor/servloc/utils/reflect"
)

var (
	// ErrNilInstance is returned when a nil instance is bound and the
	// configuration does not allow nil bindings.
	ErrNilInstance = errors.New("servloc(registry): nil instance provided")
	// ErrErasedBinding is returned when an erased descriptor is bound.
	// Erased descriptors identify a family of types, not one implementation.
	ErrErasedBinding = errors.New("servloc(registry): can't bind an erased descriptor")
	// ErrConflictingBinding indicates an attempt to re-bind a descriptor
	// to a different instance.
	ErrConflictingBinding = errors.New("servloc(registry): conflicting binding")
)

// New constructs the default in-memory apis.Registry. Exact lookups hit
// a lock-free read path; erased lookups consult a secondary index and
// are disambiguated according to cfg.ErasedPolicy.
func New(cfg apis.Config) apis.Registry {
	return &registry{
		cfg:    cfg,
		erased: make(map[string][]apis.Descriptor),
	}
}

// registry is keyed by exact apis.Descriptor, with a secondary index
// from erased identity to the exact descriptors bound under it, kept in
// binding order for the Oldest/Newest policies.
type registry struct {
	// cfg carries the disambiguation and nil-binding knobs.
	cfg apis.Config
	// mu guards write-side consistency, erased index, and counter.
	mu sync.RWMutex
	// m maps apis.Descriptor to bound instance.
	m sync.Map // map[apis.Descriptor]any
	// erased maps erased identity to exact descriptors in binding order.
	erased map[string][]apis.Descriptor
	// count tracks the number of bound entries.
	count int
}

// Bind associates an exact descriptor with an implementation instance.
// It is idempotent for the same (descriptor, instance) pair.
func (r *registry) Bind(d apis.Descriptor, instance any) error {
	// Validate inputs early.
	if d.IsZero() {
		return apis.ErrEmptyDescriptor
	}
	if d.Erased() {
		return ErrErasedBinding
	}
	if instance == nil && !r.cfg.AllowNilBindings {
		return ErrNilInstance
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(d); ok {
		if sameInstance(old, instance) {
			return nil // idempotent re-bind
		}
		return ErrConflictingBinding
	}

	// Write path: guard with the mutex to keep index and counter
	// consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(d); ok {
		if sameInstance(old, instance) {
			return nil
		}
		return ErrConflictingBinding
	}

	key, err := uref.ErasedIdentity(d.Type())
	if err != nil {
		return err
	}

	r.m.Store(d, instance)
	r.erased[key] = append(r.erased[key], d)
	r.count++
	return nil
}

// Lookup returns the instance bound for d. Exact descriptors match one
// binding or fail unresolved; erased descriptors match the family of
// bindings sharing the erased identity and are disambiguated by the
// configured policy.
func (r *registry) Lookup(d apis.Descriptor) (any, error) {
	if d.IsZero() {
		return nil, apis.ErrEmptyDescriptor
	}

	if !d.Erased() {
		if v, ok := r.m.Load(d); ok {
			return v, nil
		}
		return nil, &apis.UnresolvedError{Descriptor: d}
	}

	r.mu.RLock()
	candidates := r.erased[d.Identity()]
	r.mu.RUnlock()

	var exact apis.Descriptor
	switch n := len(candidates); {
	case n == 0:
		return nil, &apis.UnresolvedError{Descriptor: d}
	case n == 1:
		exact = candidates[0]
	default:
		switch r.cfg.ErasedPolicy {
		case apis.ErasedOldest:
			exact = candidates[0]
		case apis.ErasedNewest:
			exact = candidates[n-1]
		default:
			return nil, &apis.AmbiguousError{Descriptor: d, Candidates: n}
		}
	}

	if v, ok := r.m.Load(exact); ok {
		return v, nil
	}
	// Index and map are updated under the same lock, so a dangling
	// candidate means a concurrent Reset; report unresolved.
	return nil, &apis.UnresolvedError{Descriptor: d}
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Descriptor: key.(apis.Descriptor),
			Instance:   value,
		})
		return true
	})
	return entries
}

// Count returns the number of bound entries.
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// Reset clears all bindings.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = sync.Map{}
	r.erased = make(map[string][]apis.Descriptor)
	r.count = 0
}

// sameInstance reports whether a and b are the same bound value without
// panicking on uncomparable dynamic types (funcs, slices, maps).
func sameInstance(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta != nil && !ta.Comparable() {
		return false
	}
	return a == b
}
