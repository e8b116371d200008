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

// Package utils holds input checks shared by the md5sum commands.
package utils

import (
	"fmt"
	"os"
)

// PathValidator checks a single input path.
type PathValidator struct {
	fieldName string
	path      string
}

// NewPathValidator returns a validator for path, reported as fieldName.
func NewPathValidator(fieldName, path string) *PathValidator {
	return &PathValidator{
		fieldName: fieldName,
		path:      path,
	}
}

// Validate checks that the path is set, exists and is not a directory.
// Pipes and devices are accepted.
func (v *PathValidator) Validate() error {
	if v.path == "" {
		return fmt.Errorf("%s is required", v.fieldName)
	}

	info, err := os.Stat(v.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s %q does not exist", v.fieldName, v.path)
		}
		return fmt.Errorf("checking %s %q: %w", v.fieldName, v.path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s %q is a directory, expected file", v.fieldName, v.path)
	}
	return nil
}

// ValidateFileExists validates that path exists and can be hashed as a file.
func ValidateFileExists(fieldName, path string) error {
	return NewPathValidator(fieldName, path).Validate()
}

// ValidateMultiple validates each path and returns the first failure.
func ValidateMultiple(fieldName string, paths []string) error {
	for i, path := range paths {
		if path == "" {
			return fmt.Errorf("%s contains empty path at index %d", fieldName, i)
		}
		if err := ValidateFileExists(fmt.Sprintf("%s[%d]", fieldName, i), path); err != nil {
			return err
		}
	}
	return nil
}
