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

// Package search finds whole-word occurrences of a search term in scanned books.
//
// SearchBook applies a compiled matcher to the normalized lines of one book and
// reports each matching line once. The Searcher type fans a term out across
// many books on a worker pool and concatenates the per-book results in the
// order the books were given.
//
// A SearchMonitor can be attached to observe each stage of a search.
// ProgressMonitor reports books searched to a writer, and MultiMonitor
// combines several monitors.
package search
