// Copyright 2025 Poiesic Systems
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

// Package metrics records search activity as Prometheus metrics.
//
// Collector implements search.SearchMonitor, so it can be attached to a
// Searcher with search.WithMonitor. Each Collector owns its registry; the
// metrics can be served by any Prometheus handler or written out in the text
// exposition format with WriteText.
package metrics
