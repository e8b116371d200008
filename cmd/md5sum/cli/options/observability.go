// Copyright 2025 The Sigstore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package options

import (
	"github.com/sigstore/md5-digest/pkg/logging"
)

// Observability carries the logger built from the root flags. Tracing is
// global, see pkg/tracing.
type Observability struct {
	Logger logging.Logger
}

// NewObservability builds an Observability from the root options.
func (o *RootOptions) NewObservability() Observability {
	return Observability{
		Logger: o.NewLogger(),
	}
}
