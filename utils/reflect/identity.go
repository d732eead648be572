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

package reflect

import (
	"errors"
	"reflect"
	"strings"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("servloc(reflect): nil reflect.Type provided")
)

// Identity returns the canonical identity string for t.
//
// Naming policy:
//   - named types        -> "pkgpath.Name"; generic instantiations keep
//     their type-argument suffix ("pkg.List[string]"), so two
//     instantiations of the same generic type have distinct identities.
//   - builtins           -> bare name ("int", "string").
//   - unnamed composites -> t.String() ("*pkg.T", "map[string]int").
func Identity(t reflect.Type) (string, error) {
	if t == nil {
		return "", ErrReflectNilType
	}
	if n := t.Name(); n != "" {
		if p := t.PkgPath(); p != "" {
			return p + "." + n, nil
		}
		return n, nil
	}
	return t.String(), nil
}

// ErasedIdentity returns the identity of t with generic type arguments
// dropped: "pkg.List[string]" and "pkg.List[int]" both erase to
// "pkg.List". Types that carry no instantiation suffix (non-generic
// named types, builtins, unnamed composites) erase to their exact
// identity.
func ErasedIdentity(t reflect.Type) (string, error) {
	if t == nil {
		return "", ErrReflectNilType
	}
	if n := t.Name(); n != "" {
		n = stripTypeParams(n)
		if p := t.PkgPath(); p != "" {
			return p + "." + n, nil
		}
		return n, nil
	}
	return t.String(), nil
}

// stripTypeParams removes a generic instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
