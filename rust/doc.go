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
	"strconv"
	"strings"

	"github.com/turbolent/prettier"
)

const (
	maxLineWidth = 100
	indentation  = "    "
)

// Doc converts the token stream into a pretty-printer document. The
// document uses hard line breaks only, so the rendered text does not
// depend on the line width.
func (s TokenStream) Doc() prettier.Doc {
	return streamDoc(s.tokens, ctxDeclaration)
}

// String renders the canonical source form of the token stream.
// Equal streams render equal text.
func (s TokenStream) String() string {
	var b strings.Builder
	prettier.Prettier(&b, s.Doc(), maxLineWidth, indentation)
	text := b.String()
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text
}

// renderContext controls line breaking: declaration context (top level
// and brace bodies) breaks after semicolons and commas, expression
// context (parens) after semicolons only, and inline context (brackets
// and angles) never breaks.
type renderContext uint8

const (
	ctxDeclaration renderContext = iota
	ctxExpression
	ctxInline
)

func streamDoc(tokens []Token, ctx renderContext) prettier.Doc {
	var docs []prettier.Doc

	atLineStart := true
	attrPending := false
	var prev Token

	text := func(t string) {
		docs = append(docs, prettier.Text(t))
		atLineStart = false
	}

	breakLine := func() {
		docs = append(docs, prettier.HardLine{})
		atLineStart = true
		prev = nil
	}

	// ensureLine forces line constructs (comments, markers, raw text)
	// onto their own line
	ensureLine := func() {
		if !atLineStart {
			breakLine()
		}
	}

	for i, tok := range tokens {
		last := i == len(tokens)-1

		switch t := tok.(type) {
		case Raw:
			ensureLine()
			lines := strings.Split(strings.TrimRight(string(t), "\n"), "\n")
			for j, line := range lines {
				text(line)
				if j < len(lines)-1 {
					breakLine()
				}
			}
			if !last {
				breakLine()
			}

		case DocComment:
			ensureLine()
			text("#[doc = " + strconv.Quote(string(t)) + "]")
			if !last {
				breakLine()
			}

		case Comment:
			ensureLine()
			text("_comment_!(" + strconv.Quote(string(t)) + ");")
			if !last {
				breakLine()
			}

		case BlankLine:
			ensureLine()
			text("_blank_!();")
			if !last {
				breakLine()
			}

		default:
			if !atLineStart && needSpace(prev, tok) {
				docs = append(docs, prettier.Space)
			}

			switch t := tok.(type) {
			case Ident:
				text(string(t))
			case Literal:
				text(string(t))
			case Operator:
				text(string(t))
			case Punct:
				text(string(t))
				if t == Punct("#") {
					attrPending = true
				}
				breaks := (t == Punct(";") && ctx != ctxInline) ||
					(t == Punct(",") && ctx == ctxDeclaration)
				if breaks && !last {
					breakLine()
				}
			case Group:
				docs = append(docs, groupDoc(t))
				atLineStart = false
				switch {
				case t.Delimiter == Brackets && attrPending:
					attrPending = false
					if !last {
						breakLine()
					}
				case t.Delimiter == Braces && ctx != ctxInline && !last &&
					!continuesBraceLine(tokens[i+1]):

					breakLine()
				}
			}
		}

		if attrPending {
			switch tok.(type) {
			case Punct:
			default:
				attrPending = false
			}
		}

		prev = tok
	}

	return prettier.Concat(docs)
}

func groupDoc(g Group) prettier.Doc {
	var open, close string
	ctx := ctxInline

	switch g.Delimiter {
	case Parens:
		open, close = "(", ")"
		ctx = ctxExpression
	case Brackets:
		open, close = "[", "]"
	case Angles:
		open, close = "<", ">"
	case Braces:
		if g.Stream.IsEmpty() {
			return prettier.Text("{}")
		}
		return prettier.Concat{
			prettier.Text("{"),
			prettier.Indent{
				Doc: prettier.Concat{
					prettier.HardLine{},
					streamDoc(g.Stream.tokens, ctxDeclaration),
				},
			},
			prettier.HardLine{},
			prettier.Text("}"),
		}
	}

	if g.Stream.IsEmpty() {
		return prettier.Text(open + close)
	}

	return prettier.Concat{
		prettier.Text(open),
		streamDoc(g.Stream.tokens, ctx),
		prettier.Text(close),
	}
}

// continuesBraceLine reports whether the token may stay on the same line
// as a preceding closing brace, e.g. the semicolon after a braced
// initializer, or the else of a conditional.
func continuesBraceLine(tok Token) bool {
	switch t := tok.(type) {
	case Punct:
		switch t {
		case ";", ",":
			return true
		}
	case Ident:
		return t == "else"
	}
	return false
}

func isTightBefore(p Punct) bool {
	switch p {
	case ",", ";", ":", "?", "|", "::", ".":
		return true
	}
	return false
}

func isTightAfter(p Punct) bool {
	switch p {
	case "#", "&", "!", "|", "::", ".":
		return true
	}
	return false
}

func needSpace(prev, cur Token) bool {
	if prev == nil {
		return false
	}

	if p, ok := cur.(Punct); ok && isTightBefore(p) {
		return false
	}

	if p, ok := prev.(Punct); ok && isTightAfter(p) {
		return false
	}

	if g, ok := cur.(Group); ok {
		// braces read as blocks and initializers, keep them spaced
		if g.Delimiter == Braces {
			return true
		}
		switch prev.(type) {
		case Ident, Literal, Group:
			return false
		}
	}

	return true
}
