// Package token classifies a lexer.Lexeme stream into typed Tokens:
// literals, identifiers, and the multi-word keyword phrases LOLCODE is
// built from, matched longest-prefix-first.
package token

// Kind identifies a token's grammatical category.
type Kind string

// Literal and structural kinds.
const (
	INT      Kind = "INT"
	FLOAT    Kind = "FLOAT"
	STRING   Kind = "STRING"
	BOOL     Kind = "BOOL"
	IDENT    Kind = "IDENT"
	NEWLINE  Kind = "NEWLINE"
	EOF      Kind = "EOF"
	BANG     Kind = "!"
	QUESTION Kind = "?"
)

// Keyword kinds, one per recognized multi-word phrase.
const (
	KwHAI         Kind = "HAI"
	KwKTHXBYE     Kind = "KTHXBYE"
	KwVISIBLE     Kind = "VISIBLE"
	KwGIMMEH      Kind = "GIMMEH"
	KwORLY        Kind = "O RLY"
	KwYARLY       Kind = "YA RLY"
	KwNOWAI       Kind = "NO WAI"
	KwMEBBE       Kind = "MEBBE"
	KwOIC         Kind = "OIC"
	KwWTF         Kind = "WTF"
	KwOMG         Kind = "OMG"
	KwOMGWTF      Kind = "OMGWTF"
	KwGTFO        Kind = "GTFO"
	KwFOUNDYR     Kind = "FOUND YR"
	KwIMINYR      Kind = "IM IN YR"
	KwIMOUTTAYR   Kind = "IM OUTTA YR"
	KwUPPINYR     Kind = "UPPIN YR"
	KwNERFINYR    Kind = "NERFIN YR"
	KwWILE        Kind = "WILE"
	KwTIL         Kind = "TIL"
	KwHOWIZ       Kind = "HOW IZ"
	KwIFUSAYSO    Kind = "IF U SAY SO"
	KwMKAY        Kind = "MKAY"
	KwYR          Kind = "YR"
	KwAN          Kind = "AN"
	KwIZ          Kind = "IZ"
	KwOHHAIIM     Kind = "OH HAI IM"
	KwKTHX        Kind = "KTHX"
	KwCANHAS      Kind = "CAN HAS"
	KwISNOWA      Kind = "IS NOW A"
	KwHASA        Kind = "HAS A"
	KwITZ         Kind = "ITZ"
	KwRNOOB       Kind = "R NOOB"
	KwR           Kind = "R"
	KwA           Kind = "A"
	KwSRS         Kind = "SRS"
	KwMAEK        Kind = "MAEK"
	KwIT          Kind = "IT"
	KwIDUZ        Kind = "I DUZ"
	KwSLOT        Kind = "'Z"
	KwLIEK        Kind = "LIEK"

	KwNOOB   Kind = "NOOB"
	KwTROOF  Kind = "TROOF"
	KwNUMBR  Kind = "NUMBR"
	KwNUMBAR Kind = "NUMBAR"
	KwYARN   Kind = "YARN"
	KwBUKKIT Kind = "BUKKIT"

	KwSUMOF      Kind = "SUM OF"
	KwDIFFOF     Kind = "DIFF OF"
	KwPRODUKTOF  Kind = "PRODUKT OF"
	KwQUOSHUNTOF Kind = "QUOSHUNT OF"
	KwMODOF      Kind = "MOD OF"
	KwBIGGROF    Kind = "BIGGR OF"
	KwSMALLROF   Kind = "SMALLR OF"
	KwBOTHOF     Kind = "BOTH OF"
	KwEITHEROF   Kind = "EITHER OF"
	KwWONOF      Kind = "WON OF"
	KwBOTHSAEM   Kind = "BOTH SAEM"
	KwDIFFRINT   Kind = "DIFFRINT"
	KwNOT        Kind = "NOT"
	KwALLOF      Kind = "ALL OF"
	KwANYOF      Kind = "ANY OF"
	KwSMOOSH     Kind = "SMOOSH"
)

// Token is one classified element of the program's token stream.
type Token struct {
	Kind  Kind
	Image string
	File  string
	Line  int
	Lit   interface{} // int64, float64, bool, or a raw (unescaped) string body
}

type keywordDef struct {
	words []string
	kind  Kind
}

// keywordTable is sorted by descending word count so matching always
// prefers the longest phrase starting at the current lexeme (e.g. "R NOOB"
// before bare "R", "IM OUTTA YR" before "IM IN YR" never collide since
// their second words differ, but both must be tried before single-word
// fallbacks).
var keywordTable = []keywordDef{
	{[]string{"IF", "U", "SAY", "SO"}, KwIFUSAYSO},
	{[]string{"IM", "OUTTA", "YR"}, KwIMOUTTAYR},
	{[]string{"IM", "IN", "YR"}, KwIMINYR},
	{[]string{"OH", "HAI", "IM"}, KwOHHAIIM},
	{[]string{"IS", "NOW", "A"}, KwISNOWA},
	{[]string{"HOW", "IZ"}, KwHOWIZ},
	{[]string{"CAN", "HAS"}, KwCANHAS},
	{[]string{"R", "NOOB"}, KwRNOOB},
	{[]string{"HAS", "A"}, KwHASA},
	{[]string{"FOUND", "YR"}, KwFOUNDYR},
	{[]string{"UPPIN", "YR"}, KwUPPINYR},
	{[]string{"NERFIN", "YR"}, KwNERFINYR},
	{[]string{"YA", "RLY"}, KwYARLY},
	{[]string{"NO", "WAI"}, KwNOWAI},
	{[]string{"O", "RLY"}, KwORLY},
	{[]string{"SUM", "OF"}, KwSUMOF},
	{[]string{"DIFF", "OF"}, KwDIFFOF},
	{[]string{"PRODUKT", "OF"}, KwPRODUKTOF},
	{[]string{"QUOSHUNT", "OF"}, KwQUOSHUNTOF},
	{[]string{"MOD", "OF"}, KwMODOF},
	{[]string{"BIGGR", "OF"}, KwBIGGROF},
	{[]string{"SMALLR", "OF"}, KwSMALLROF},
	{[]string{"BOTH", "OF"}, KwBOTHOF},
	{[]string{"EITHER", "OF"}, KwEITHEROF},
	{[]string{"WON", "OF"}, KwWONOF},
	{[]string{"BOTH", "SAEM"}, KwBOTHSAEM},
	{[]string{"ALL", "OF"}, KwALLOF},
	{[]string{"ANY", "OF"}, KwANYOF},
	{[]string{"I", "DUZ"}, KwIDUZ},
	{[]string{"R"}, KwR},
	{[]string{"A"}, KwA},
	{[]string{"AN"}, KwAN},
	{[]string{"YR"}, KwYR},
	{[]string{"IZ"}, KwIZ},
	{[]string{"IT"}, KwIT},
	{[]string{"ITZ"}, KwITZ},
	{[]string{"SRS"}, KwSRS},
	{[]string{"MAEK"}, KwMAEK},
	{[]string{"MKAY"}, KwMKAY},
	{[]string{"WILE"}, KwWILE},
	{[]string{"TIL"}, KwTIL},
	{[]string{"GTFO"}, KwGTFO},
	{[]string{"OIC"}, KwOIC},
	{[]string{"MEBBE"}, KwMEBBE},
	{[]string{"OMGWTF"}, KwOMGWTF},
	{[]string{"OMG"}, KwOMG},
	{[]string{"WTF"}, KwWTF},
	{[]string{"VISIBLE"}, KwVISIBLE},
	{[]string{"GIMMEH"}, KwGIMMEH},
	{[]string{"HAI"}, KwHAI},
	{[]string{"KTHXBYE"}, KwKTHXBYE},
	{[]string{"KTHX"}, KwKTHX},
	{[]string{"NOT"}, KwNOT},
	{[]string{"DIFFRINT"}, KwDIFFRINT},
	{[]string{"SMOOSH"}, KwSMOOSH},
	{[]string{"NOOB"}, KwNOOB},
	{[]string{"TROOF"}, KwTROOF},
	{[]string{"NUMBR"}, KwNUMBR},
	{[]string{"NUMBAR"}, KwNUMBAR},
	{[]string{"YARN"}, KwYARN},
	{[]string{"BUKKIT"}, KwBUKKIT},
	{[]string{"LIEK"}, KwLIEK},
	{[]string{"'Z"}, KwSLOT},
}
