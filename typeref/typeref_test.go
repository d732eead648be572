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

package typeref_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nightwolfzor/servloc/apis"
	"github.com/nightwolfzor/servloc/typeref"
)

type repo[T any] struct{ items []T }

type user struct{ ID string }

func TestNew_RoundTripCapture(t *testing.T) {
	ref := typeref.New[repo[user]]()

	d, err := ref.Descriptor()
	require.NoError(t, err)

	// The capture equals the independently constructed descriptor for
	// the same fully-specified type.
	require.Equal(t, typeref.Of[repo[user]](), d)
	require.Equal(t, reflect.TypeOf((*repo[user])(nil)).Elem(), d.Type())
	require.False(t, d.Erased())
}

func TestNew_DistinguishesInstantiations(t *testing.T) {
	ds, err := typeref.New[repo[string]]().Descriptor()
	require.NoError(t, err)
	di, err := typeref.New[repo[int]]().Descriptor()
	require.NoError(t, err)

	require.NotEqual(t, ds, di)
}

func TestDescriptor_CapturedOnceAndImmutable(t *testing.T) {
	ref := typeref.New[repo[user]]()

	d1, err := ref.Descriptor()
	require.NoError(t, err)
	d2, err := ref.Descriptor()
	require.NoError(t, err)
	require.Equal(t, d1, d2)
}

func TestDescriptor_DirectConstructionFails(t *testing.T) {
	// Zero value: the capture step never ran.
	var ref typeref.TypeReference[repo[user]]
	_, err := (&ref).Descriptor()

	var missing *apis.MissingTypeParameterError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, reflect.TypeOf((*typeref.TypeReference[repo[user]])(nil)).Elem(), missing.Carrier)
	require.True(t, strings.Contains(err.Error(), "TypeReference"),
		"failure must report the carrier actually found, got %q", err.Error())
}

func TestDescriptor_StructLiteralFails(t *testing.T) {
	ref := &typeref.TypeReference[user]{}
	_, err := ref.Descriptor()

	var missing *apis.MissingTypeParameterError
	require.ErrorAs(t, err, &missing)
}

func TestDescriptor_NilReceiverFails(t *testing.T) {
	var ref *typeref.TypeReference[user]
	_, err := ref.Descriptor()

	var missing *apis.MissingTypeParameterError
	require.ErrorAs(t, err, &missing)
}

func TestErasedOf_CollapsesInstantiations(t *testing.T) {
	es := typeref.ErasedOf[repo[string]]()
	ei := typeref.ErasedOf[repo[int]]()

	require.Equal(t, es, ei)
	require.True(t, es.Erased())
	require.Nil(t, es.Type())

	// Erased and exact descriptors never compare equal, even when they
	// denote the same non-generic type.
	require.NotEqual(t, typeref.Of[user](), typeref.ErasedOf[user]())
	require.Equal(t, typeref.Of[user]().Identity(), typeref.ErasedOf[user]().Identity())
}
