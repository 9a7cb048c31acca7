// Copyright (c) 2026, The MaMMoS Project.
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

package validator

import "sort"

// Set is an unordered collection of name or path strings.
type Set map[string]struct{}

// NewSet creates a Set containing the given items.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Add inserts the given items into the set.
func (s Set) Add(items ...string) {
	for _, item := range items {
		s[item] = struct{}{}
	}
}

// Has reports whether item is in the set.
func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Remove deletes the given items from the set.
func (s Set) Remove(items ...string) {
	for _, item := range items {
		delete(s, item)
	}
}

// Len returns the number of items in the set.
func (s Set) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for item := range s {
		c[item] = struct{}{}
	}
	return c
}

// Union returns a new set with the items of s and other.
func (s Set) Union(other Set) Set {
	u := make(Set, len(s)+len(other))
	for item := range s {
		u[item] = struct{}{}
	}
	for item := range other {
		u[item] = struct{}{}
	}
	return u
}

// Intersect returns a new set with the items present in both s and other.
func (s Set) Intersect(other Set) Set {
	i := make(Set)
	for item := range s {
		if other.Has(item) {
			i[item] = struct{}{}
		}
	}
	return i
}

// Diff returns a new set with the items of s that are not in other.
func (s Set) Diff(other Set) Set {
	d := make(Set)
	for item := range s {
		if !other.Has(item) {
			d[item] = struct{}{}
		}
	}
	return d
}

// Equal reports whether s and other contain exactly the same items.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for item := range s {
		if !other.Has(item) {
			return false
		}
	}
	return true
}

// Sorted returns the items of the set in lexicographic order.
func (s Set) Sorted() []string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}
