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

// Package defaults provides centralized configuration constants.
//
// Timeout values and request limits used across the codebase live
// here so that tuning happens in one place. Currently covers the HTTP
// client settings shared by the serializer's remote reader and the
// ontology vocabulary client.
package defaults
