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

// Package rust models emitted Rust source as token trees, and provides
// the identifier normalization the target language requires.
//
// A token stream is not formatted text: rendering produces the canonical
// form, including the `_blank_!();` and `_comment_!(…);` markers a
// downstream formatter interprets as literal blank lines and comments.
package rust

import "strconv"

// Delimiter is the bracketing of a Group.
type Delimiter uint8

const (
	Parens Delimiter = iota
	Brackets
	Braces
	// Angles is a generic-argument list. Not a delimiter in Rust's own
	// token model, but grouping the arguments keeps their spacing and
	// line-breaking rules away from comparison operators.
	Angles
)

// Token is one node of a token tree.
type Token interface {
	isToken()
}

// Ident is an identifier or keyword. Macro invocations keep their bang in
// the identifier, e.g. `todo!`.
type Ident string

var _ Token = Ident("")

func (Ident) isToken() {}

// Punct is structural punctuation: `,`, `;`, `::`, `.`, `#`, `<`, `>`,
// `&`, `!`, `|`, `:`. Spacing around puncts is decided at rendering time.
type Punct string

var _ Token = Punct("")

func (Punct) isToken() {}

// Operator is a binary or assignment operator, or an arrow. Operators are
// always surrounded by spaces.
type Operator string

var _ Token = Operator("")

func (Operator) isToken() {}

// Literal is a number or string literal, already in source form.
type Literal string

var _ Token = Literal("")

func (Literal) isToken() {}

// Raw is opaque source text emitted verbatim on its own line, used for
// pass-through import statements.
type Raw string

var _ Token = Raw("")

func (Raw) isToken() {}

// DocComment renders as a `#[doc = "…"]` attribute line.
type DocComment string

var _ Token = DocComment("")

func (DocComment) isToken() {}

// Comment renders as a `_comment_!("…");` marker line.
type Comment string

var _ Token = Comment("")

func (Comment) isToken() {}

// BlankLine renders as a `_blank_!();` marker line.
type BlankLine struct{}

var _ Token = BlankLine{}

func (BlankLine) isToken() {}

// Group is a delimited sub-stream.
type Group struct {
	Delimiter Delimiter
	Stream    TokenStream
}

var _ Token = Group{}

func (Group) isToken() {}

// TokenStream is a sequence of tokens.
type TokenStream struct {
	tokens []Token
}

// Tokens constructs a stream from the given tokens.
func Tokens(tokens ...Token) TokenStream {
	return TokenStream{tokens: tokens}
}

func (s *TokenStream) Append(tokens ...Token) {
	s.tokens = append(s.tokens, tokens...)
}

func (s *TokenStream) Extend(other TokenStream) {
	s.tokens = append(s.tokens, other.tokens...)
}

func (s TokenStream) IsEmpty() bool {
	return len(s.tokens) == 0
}

func (s TokenStream) Tokens() []Token {
	return s.tokens
}

// StringLit builds a quoted, escaped string literal.
func StringLit(value string) Literal {
	return Literal(strconv.Quote(value))
}

// Parenthesized wraps a stream in parentheses.
func Parenthesized(stream TokenStream) Group {
	return Group{Delimiter: Parens, Stream: stream}
}

// Bracketed wraps a stream in square brackets.
func Bracketed(stream TokenStream) Group {
	return Group{Delimiter: Brackets, Stream: stream}
}

// Braced wraps a stream in curly braces.
func Braced(stream TokenStream) Group {
	return Group{Delimiter: Braces, Stream: stream}
}

// Angled wraps a stream in a generic-argument list.
func Angled(stream TokenStream) Group {
	return Group{Delimiter: Angles, Stream: stream}
}
