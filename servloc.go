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

package servloc

import (
	"github.com/go-logr/logr"

	"github.com/nightwolfzor/servloc/apis"
	"github.com/nightwolfzor/servloc/builder"
	"github.com/nightwolfzor/servloc/config"
	"github.com/nightwolfzor/servloc/typeref"
)

// Aliases for the common contract surface, so composition roots can
// depend on this package alone.
type (
	// Descriptor is the universal lookup key; see apis.Descriptor.
	Descriptor = apis.Descriptor
	// Locator is the canonical resolution operation; see apis.Locator.
	Locator = apis.Locator
	// Registry is the binding collaborator; see apis.Registry.
	Registry = apis.Registry
)

// Erased-lookup disambiguation policies; see apis.ErasedPolicy.
const (
	ErasedAmbiguous = apis.ErasedAmbiguous
	ErasedOldest    = apis.ErasedOldest
	ErasedNewest    = apis.ErasedNewest
)

// Option configures a composition built by New.
type Option func(*composition)

// composition collects the settings New assembles a locator from.
type composition struct {
	cfg []config.Option
	log logr.Logger
}

// WithErasedPolicy selects how the registry disambiguates erased
// (lossy) lookups that match more than one binding.
func WithErasedPolicy(p apis.ErasedPolicy) Option {
	return func(c *composition) {
		c.cfg = append(c.cfg, config.WithErasedPolicy(p))
	}
}

// WithAllowNilBindings permits binding nil instances.
func WithAllowNilBindings(allow bool) Option {
	return func(c *composition) {
		c.cfg = append(c.cfg, config.WithAllowNilBindings(allow))
	}
}

// WithLogger sets the logger used for resolution tracing.
func WithLogger(log logr.Logger) Option {
	return func(c *composition) {
		c.log = log
	}
}

// New composes a locator over a fresh default registry and returns
// both as explicit values. There is no package-level instance: each
// composition root holds and threads through its own pair, which keeps
// resolution deterministic when independent compositions coexist.
func New(opts ...Option) (apis.Locator, apis.Registry) {
	c := composition{log: logr.Discard()}
	for _, opt := range opts {
		opt(&c)
	}
	cfg := config.NewConfig(c.cfg...)
	b := builder.New(c.log)
	reg := b.BuildRegistry(cfg, nil)
	return b.BuildLocator(cfg, reg), reg
}

// Bind registers instance under the exact descriptor of the type
// parameter T. Binding under an interface type parameter is how a
// concrete implementation is exposed behind its abstraction:
//
//	err := servloc.Bind[UserStore](reg, pgStore)
func Bind[T any](reg apis.Registry, instance T) error {
	return reg.Bind(typeref.Of[T](), instance)
}
