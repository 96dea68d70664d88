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

// Package matcher compiles search terms into case-sensitive whole-word matchers.
//
// A term is split into runs of word characters ([A-Za-z0-9_]) and runs of
// everything else. A line matches when it contains the term verbatim and
// every word run of the term is bounded by word boundaries in the line.
// Non-word runs (spaces, punctuation, hyphens, apostrophes) match literally.
//
// Examples:
//
//	Compile("cat").Match("cats")                        // false
//	Compile("Canadian").Match("the Canadian's")         // true
//	Compile("__hash__").Match("a method __hash__")      // true
//	Compile("Twenty-Three").Match("Twenty-Three years") // true
package matcher
