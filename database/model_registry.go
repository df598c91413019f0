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

package database

import (
	"sort"
	"sync"
)

var defaultRegistry = &modelRegistry{}

// MappedModel is a mapped entity type registered for automatic Bun model
// registration and table bootstrap. Instance returns a struct pointer
// compatible with Bun; Priority controls creation order (lower values first,
// referenced tables before referencing ones).
type MappedModel interface {
	Instance() interface{}
	Priority() int
}

type modelRegistry struct {
	mu     sync.RWMutex
	models []MappedModel
}

func (r *modelRegistry) register(model MappedModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models = append(r.models, model)
}

func (r *modelRegistry) all() []MappedModel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	models := make([]MappedModel, len(r.models))
	copy(models, r.models)
	sort.SliceStable(models, func(i, j int) bool {
		return models[i].Priority() < models[j].Priority()
	})
	return models
}

type modelAdapter struct {
	instance interface{}
	priority int
}

func (a *modelAdapter) Instance() interface{} { return a.instance }

func (a *modelAdapter) Priority() int { return a.priority }

// RegisterModel adds a mapped entity type to the default registry, typically
// from an init function of the package declaring the type.
func RegisterModel(instance interface{}, priority int) {
	defaultRegistry.register(&modelAdapter{instance: instance, priority: priority})
}

// RegisteredModels returns all registered models sorted by ascending priority.
func RegisteredModels() []MappedModel {
	return defaultRegistry.all()
}

// RegisteredModelInstances returns the struct pointers of all registered
// models in priority order.
func RegisteredModelInstances() []interface{} {
	models := RegisteredModels()
	instances := make([]interface{}, len(models))
	for i, model := range models {
		instances[i] = model.Instance()
	}
	return instances
}
