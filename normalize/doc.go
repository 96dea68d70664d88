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

// Package normalize reconstructs the reading order of scanned book lines.
//
// Scanned lines may arrive in any order and OCR splits words across line ends
// with a hyphen. Normalization:
//   - sorts lines by page, then line number (stable)
//   - replaces tabs, newlines and carriage returns with spaces and trims each line
//   - rejoins words hyphen-broken across two consecutive lines of the same page
//
// The first line of a repaired pair receives the whole word; the second keeps
// only what followed the word fragment. A word broken over more lines is
// gathered onto the line where it starts and the middle lines are left empty.
// Page and line numbers never change.
package normalize
