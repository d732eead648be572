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

package config

import (
	"github.com/nightwolfzor/servloc/apis"
)

const (
	// DefaultErasedPolicy represents the default for ErasedPolicy.
	// Ambiguous erased lookups fail rather than picking a silent winner.
	DefaultErasedPolicy = apis.ErasedAmbiguous
	// DefaultAllowNilBindings represents the default for AllowNilBindings.
	// When false, binding a nil instance is rejected.
	DefaultAllowNilBindings = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		ErasedPolicy:     DefaultErasedPolicy,
		AllowNilBindings: DefaultAllowNilBindings,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithErasedPolicy sets the ErasedPolicy option.
func WithErasedPolicy(p apis.ErasedPolicy) Option {
	return func(c *apis.Config) {
		c.ErasedPolicy = p
	}
}

// WithAllowNilBindings sets the AllowNilBindings option.
func WithAllowNilBindings(allow bool) Option {
	return func(c *apis.Config) {
		c.AllowNilBindings = allow
	}
}
