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

package core

// IsWordByte reports whether b belongs to the word character class [A-Za-z0-9_].
// Bytes of multi-byte UTF-8 sequences are never word characters.
func IsWordByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}

// IsBoundary reports whether a word boundary sits at byte offset i of s.
func IsBoundary(s string, i int) bool {
	before := i > 0 && IsWordByte(s[i-1])
	after := i < len(s) && IsWordByte(s[i])
	return before != after
}

// LeadingWord splits s into its maximal leading run of word characters and
// whatever follows it. ok is false when s does not start with a word character.
func LeadingWord(s string) (word, rest string, ok bool) {
	n := 0
	for n < len(s) && IsWordByte(s[n]) {
		n++
	}
	if n == 0 {
		return "", s, false
	}
	return s[:n], s[n:], true
}
