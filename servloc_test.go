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

package servloc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nightwolfzor/servloc"
	"github.com/nightwolfzor/servloc/apis"
	"github.com/nightwolfzor/servloc/locator"
	"github.com/nightwolfzor/servloc/typeref"
)

type mailer interface{ Send(to, body string) error }

type smtpMailer struct{ host string }

func (m *smtpMailer) Send(string, string) error { return nil }

type queue[T any] struct{ name string }

func TestNew_ComposesWorkingPair(t *testing.T) {
	loc, reg := servloc.New()
	impl := &smtpMailer{host: "localhost"}

	require.NoError(t, servloc.Bind[mailer](reg, impl))

	got, err := locator.Resolve[mailer](loc)
	require.NoError(t, err)
	require.Same(t, impl, got.(*smtpMailer))
}

func TestNew_CompositionsAreIndependent(t *testing.T) {
	// No hidden global: two compositions never see each other's bindings.
	locA, regA := servloc.New()
	locB, _ := servloc.New()

	require.NoError(t, servloc.Bind[mailer](regA, &smtpMailer{host: "a"}))

	_, err := locator.Resolve[mailer](locA)
	require.NoError(t, err)

	_, err = locator.Resolve[mailer](locB)
	var unresolved *apis.UnresolvedError
	require.ErrorAs(t, err, &unresolved)
}

func TestNew_WithErasedPolicy(t *testing.T) {
	loc, reg := servloc.New(servloc.WithErasedPolicy(servloc.ErasedNewest))

	require.NoError(t, servloc.Bind(reg, queue[string]{name: "first"}))
	require.NoError(t, servloc.Bind(reg, queue[int]{name: "second"}))

	got, err := locator.ResolveErased[queue[int]](loc)
	require.NoError(t, err)
	require.Equal(t, queue[int]{name: "second"}, got)

	// Precise entry points stay precise under any policy.
	gotS, err := locator.ResolveRef(loc, typeref.New[queue[string]]())
	require.NoError(t, err)
	require.Equal(t, queue[string]{name: "first"}, gotS)
}

func TestNew_WithAllowNilBindings(t *testing.T) {
	_, reg := servloc.New(servloc.WithAllowNilBindings(true))
	require.NoError(t, reg.Bind(typeref.Of[mailer](), nil))
}

func TestBind_ConflictSurfaces(t *testing.T) {
	_, reg := servloc.New()

	require.NoError(t, servloc.Bind[mailer](reg, &smtpMailer{host: "a"}))
	require.Error(t, servloc.Bind[mailer](reg, &smtpMailer{host: "b"}))
}
