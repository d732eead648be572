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

package locator

import (
	"errors"

	"github.com/go-logr/logr"

	"github.com/nightwolfzor/servloc/apis"
)

// ErrNilRegistry is raised when a locator is constructed without a registry.
var ErrNilRegistry = errors.New("servloc(locator): nil registry provided")

// Option configures a locator at construction.
type Option func(*loc)

// WithLogger sets the logger used for resolution tracing. Resolutions
// are traced at V(1); tracing never alters what the caller receives.
// The default is logr.Discard().
func WithLogger(log logr.Logger) Option {
	return func(l *loc) {
		l.log = log
	}
}

// New constructs an apis.Locator resolving against reg. The returned
// locator is safe for concurrent use provided reg is safe for
// concurrent Lookup calls. A nil registry is a composition bug and panics.
func New(reg apis.Registry, opts ...Option) apis.Locator {
	if reg == nil {
		panic(ErrNilRegistry)
	}
	l := loc{reg: reg, log: logr.Discard()}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// loc is an immutable locator over one registry.
type loc struct {
	reg apis.Registry
	log logr.Logger
}

// Resolve is the canonical resolution operation: it looks up the exact
// descriptor in the registry and surfaces the registry's answer to the
// caller unchanged. A zero descriptor is rejected before any registry
// interaction. No retries, no fallback onto a lossier key.
func (l loc) Resolve(d apis.Descriptor) (any, error) {
	if d.IsZero() {
		return nil, apis.ErrEmptyDescriptor
	}
	v, err := l.reg.Lookup(d)
	if err != nil {
		l.log.V(1).Info("resolution failed", "descriptor", d.String(), "reason", err.Error())
		return nil, err
	}
	l.log.V(1).Info("resolved", "descriptor", d.String())
	return v, nil
}
