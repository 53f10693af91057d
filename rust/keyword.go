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

import "github.com/SaveTheRbtz/mph"

// Keywords which are reserved in Rust but not in Solidity, i.e. the names
// a parsed contract may legally use but the emitted source may not.
//
// NOTE: ensure to update allKeywords when adding a new keyword
const (
	KeywordConst   = "const"
	KeywordCrate   = "crate"
	KeywordExtern  = "extern"
	KeywordFn      = "fn"
	KeywordImpl    = "impl"
	KeywordIn      = "in"
	KeywordLoop    = "loop"
	KeywordMod     = "mod"
	KeywordMove    = "move"
	KeywordMut     = "mut"
	KeywordPub     = "pub"
	KeywordRef     = "ref"
	KeywordSelf    = "self"
	KeywordSelfBig = "Self"
	KeywordTrait   = "trait"
	KeywordUnsafe  = "unsafe"
	KeywordUse     = "use"
	KeywordWhere   = "where"
	KeywordBecome  = "become"
	KeywordBox     = "box"
	KeywordFinal   = "final"
	KeywordPriv    = "priv"
	KeywordUnsized = "unsized"
	KeywordAsync   = "async"
	KeywordAwait   = "await"
	KeywordDyn     = "dyn"
	KeywordUnion   = "union"
	// NOTE: ensure to update allKeywords when adding a new keyword
)

var allKeywords = []string{
	KeywordConst,
	KeywordCrate,
	KeywordExtern,
	KeywordFn,
	KeywordImpl,
	KeywordIn,
	KeywordLoop,
	KeywordMod,
	KeywordMove,
	KeywordMut,
	KeywordPub,
	KeywordRef,
	KeywordSelf,
	KeywordSelfBig,
	KeywordTrait,
	KeywordUnsafe,
	KeywordUse,
	KeywordWhere,
	KeywordBecome,
	KeywordBox,
	KeywordFinal,
	KeywordPriv,
	KeywordUnsized,
	KeywordAsync,
	KeywordAwait,
	KeywordDyn,
	KeywordUnion,
}

var keywordsTable = mph.Build(allKeywords)

// IsKeyword reports whether the given identifier is reserved in the
// target language.
func IsKeyword(identifier string) bool {
	_, ok := keywordsTable.Lookup(identifier)
	return ok
}
