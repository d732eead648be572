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

package builder

import (
	"github.com/go-logr/logr"

	"github.com/nightwolfzor/servloc/apis"
	"github.com/nightwolfzor/servloc/locator"
	"github.com/nightwolfzor/servloc/registry"
)

// New creates and returns a new instance of an apis.Builder.
// The logger is handed to every locator the builder composes.
func New(log logr.Logger) apis.Builder {
	return &builder{log: log}
}

// builder composes the default registry and locator implementations.
type builder struct {
	log logr.Logger
}

// BuildRegistry builds and returns a new apis.Registry based on the
// provided configuration and pre-existing registry. If a pre-existing
// registry is provided, its bindings are copied into the new registry.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry) apis.Registry {
	reg := registry.New(cfg)
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = reg.Bind(e.Descriptor, e.Instance)
		}
	}
	return reg
}

// BuildLocator builds and returns a new apis.Locator resolving against reg.
func (b *builder) BuildLocator(_ apis.Config, reg apis.Registry) apis.Locator {
	return locator.New(reg, locator.WithLogger(b.log))
}
