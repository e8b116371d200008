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

package hashengines

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownAlgorithm is returned by Create for names nobody registered.
var ErrUnknownAlgorithm = errors.New("unsupported hash algorithm")

// HashEngineFactory builds a fresh engine.
type HashEngineFactory func() (StreamingHashEngine, error)

var (
	registry = make(map[string]HashEngineFactory)
	mu       sync.RWMutex
)

// Register adds factory under algorithm. Names are case-sensitive and may only
// be registered once.
func Register(algorithm string, factory HashEngineFactory) error {
	if algorithm == "" {
		return fmt.Errorf("algorithm name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[algorithm]; exists {
		return fmt.Errorf("hash algorithm %q already registered", algorithm)
	}
	registry[algorithm] = factory
	return nil
}

// MustRegister is Register for package init blocks; it panics on error.
func MustRegister(algorithm string, factory HashEngineFactory) {
	if err := Register(algorithm, factory); err != nil {
		panic(fmt.Sprintf("failed to register hash algorithm %q: %v", algorithm, err))
	}
}

// Create returns a new engine for algorithm.
func Create(algorithm string) (StreamingHashEngine, error) {
	mu.RLock()
	factory, exists := registry[algorithm]
	mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnknownAlgorithm, algorithm, SupportedAlgorithms())
	}

	engine, err := factory()
	if err != nil {
		return nil, fmt.Errorf("failed to create hash engine for %q: %w", algorithm, err)
	}
	return engine, nil
}

// SupportedAlgorithms returns the registered names in sorted order.
func SupportedAlgorithms() []string {
	mu.RLock()
	defer mu.RUnlock()

	algorithms := make([]string, 0, len(registry))
	for algo := range registry {
		algorithms = append(algorithms, algo)
	}
	sort.Strings(algorithms)
	return algorithms
}

// IsSupported reports whether algorithm has been registered.
func IsSupported(algorithm string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, exists := registry[algorithm]
	return exists
}

// Unregister removes algorithm from the registry. Mostly useful in tests.
func Unregister(algorithm string) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[algorithm]; !exists {
		return fmt.Errorf("hash algorithm %q not registered", algorithm)
	}
	delete(registry, algorithm)
	return nil
}
