// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package style

// Feature gives access to the properties of a feature.
type Feature interface {
	// Get returns the value of a property and true if the property exists.
	Get(name string) (any, bool)
}

// FeatureMap is a feature storing its properties in a map.
type FeatureMap map[string]any

var _ Feature = FeatureMap(nil)

// Get returns the value of a property.
func (f FeatureMap) Get(name string) (any, bool) {
	val, ok := f[name]
	return val, ok
}
