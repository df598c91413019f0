/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package repository

import "fmt"

// ConfigurationError is returned when a repository is constructed over an
// entity type whose mapping cannot be used, for example zero or more than one
// primary key attributes. The repository instance is unusable afterwards.
type ConfigurationError struct {
	Model  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Model == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Model, e.Reason)
}

// InvalidArgumentError is returned when a nil entity, id, collection,
// collection element, or pageable is passed to a public repository method.
// It is raised before any statement executes, so no partial side effects
// are possible.
type InvalidArgumentError struct {
	Argument string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s must not be nil", e.Argument)
}

// AttributeResolutionError is returned when a sort order references a
// property that is not mapped on the bound entity type.
type AttributeResolutionError struct {
	Model    string
	Property string
}

func (e *AttributeResolutionError) Error() string {
	return fmt.Sprintf("%s has no mapped attribute %q", e.Model, e.Property)
}

func errNilArgument(name string) error {
	return &InvalidArgumentError{Argument: name}
}
