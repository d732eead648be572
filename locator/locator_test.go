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

package locator_test

import (
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/require"

	"github.com/nightwolfzor/servloc/apis"
	"github.com/nightwolfzor/servloc/config"
	"github.com/nightwolfzor/servloc/locator"
	"github.com/nightwolfzor/servloc/registry"
	"github.com/nightwolfzor/servloc/typeref"
)

// countingRegistry wraps a real registry and counts Lookup calls, so
// tests can prove that guarded failures never reach the registry.
type countingRegistry struct {
	apis.Registry
	lookups int
}

func (c *countingRegistry) Lookup(d apis.Descriptor) (any, error) {
	c.lookups++
	return c.Registry.Lookup(d)
}

func newCounting() *countingRegistry {
	return &countingRegistry{Registry: registry.New(config.DefaultConfig())}
}

type clock interface{ Now() int64 }

type fixedClock struct{ at int64 }

func (f *fixedClock) Now() int64 { return f.at }

func TestNew_NilRegistryPanics(t *testing.T) {
	require.PanicsWithValue(t, locator.ErrNilRegistry, func() {
		locator.New(nil)
	})
}

func TestResolve_Canonical(t *testing.T) {
	reg := newCounting()
	loc := locator.New(reg)
	impl := &fixedClock{at: 42}
	require.NoError(t, reg.Bind(typeref.Of[clock](), impl))

	got, err := loc.Resolve(typeref.Of[clock]())
	require.NoError(t, err)
	require.Same(t, impl, got.(*fixedClock))
}

func TestResolve_EmptyDescriptorNeverReachesRegistry(t *testing.T) {
	reg := newCounting()
	loc := locator.New(reg)

	_, err := loc.Resolve(apis.Descriptor{})
	require.ErrorIs(t, err, apis.ErrEmptyDescriptor)
	require.Zero(t, reg.lookups)
}

func TestResolve_SurfacesRegistryErrorsUnchanged(t *testing.T) {
	reg := newCounting()
	loc := locator.New(reg)

	want := typeref.Of[clock]()
	_, err := loc.Resolve(want)

	var unresolved *apis.UnresolvedError
	require.ErrorAs(t, err, &unresolved)
	require.Equal(t, want, unresolved.Descriptor)
	require.Equal(t, 1, reg.lookups)
}

func TestWithLogger_TracesWithoutAlteringResults(t *testing.T) {
	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	reg := newCounting()
	loc := locator.New(reg, locator.WithLogger(log))
	require.NoError(t, reg.Bind(typeref.Of[clock](), &fixedClock{}))

	_, err := loc.Resolve(typeref.Of[clock]())
	require.NoError(t, err)

	_, err = loc.Resolve(typeref.Of[*fixedClock]())
	var unresolved *apis.UnresolvedError
	require.ErrorAs(t, err, &unresolved)

	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "resolved")
	require.Contains(t, lines[1], "resolution failed")
	require.True(t, strings.Contains(lines[1], "fixedClock"), "trace names the descriptor, got %q", lines[1])
}
