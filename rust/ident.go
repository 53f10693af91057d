/*
 * Soltoink - Solidity to ink! smart contract translator
 *
 * Copyright Soltoink contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package rust

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// KeywordSuffix is appended to an identifier which collides with a
// reserved word, before any casing is applied.
const KeywordSuffix = "_is_rust_keyword"

// Discard is the placeholder identifier for an intentionally unused
// parameter or return slot. It is never escaped or cased.
const Discard = "_"

// SafeSnake normalizes a raw name for field, function, or parameter
// position: reserved words are escaped, then the name is snake_cased.
// The normalization is pure, deterministic, and idempotent.
func SafeSnake(name string) string {
	if name == Discard {
		return name
	}
	words := splitWords(escapeKeyword(name))
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

// SafePascal normalizes a raw name for type or enum-variant position.
func SafePascal(name string) string {
	if name == Discard {
		return name
	}
	words := splitWords(escapeKeyword(name))
	titleCaser := cases.Title(language.Und)
	for i, word := range words {
		words[i] = titleCaser.String(word)
	}
	return strings.Join(words, "")
}

// SafeUpperSnake normalizes a raw name for constant position.
func SafeUpperSnake(name string) string {
	if name == Discard {
		return name
	}
	words := splitWords(escapeKeyword(name))
	for i, word := range words {
		words[i] = strings.ToUpper(word)
	}
	return strings.Join(words, "_")
}

func escapeKeyword(name string) string {
	if IsKeyword(name) {
		return name + KeywordSuffix
	}
	return name
}

// splitWords splits a name into words at non-alphanumeric characters,
// lower-to-upper boundaries, acronym ends (upper-upper-lower), and
// letter/digit transitions: "IUniswapV1Factory" becomes
// ["I", "Uniswap", "V", "1", "Factory"].
func splitWords(name string) []string {
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}

	runes := []rune(name)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}

		if len(current) > 0 {
			prev := current[len(current)-1]
			switch {
			case unicode.IsLower(prev) && unicode.IsUpper(r),
				unicode.IsLetter(prev) != unicode.IsLetter(r),
				unicode.IsUpper(prev) && unicode.IsUpper(r) &&
					i+1 < len(runes) && unicode.IsLower(runes[i+1]):

				flush()
			}
		}

		current = append(current, r)
	}
	flush()

	return words
}
