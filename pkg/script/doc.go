// Package script parses deck layout scripts into typed commands.
//
// A deck script is a line oriented description of a printable card deck, in
// the nanDeck style: page geometry, borders, linked data sources and the
// placement of image and text fields on each card.
//
//	LINK= "1SJdr!cards"
//	UNIT= MM
//	PAGE=207,297, PORTRAIT
//	VISUAL=, 10, 10
//	IMAGE="1-{(IMAGE)}",[IMAGE],0%,0%,100%,100%
//	;a comment
//	TEXTFONT="1-{(NAME)}",[NAME],0%,0%,100%,100%,CENTER,TOP,0,100,Arial,14,T,#CC9900
//	ENDVISUAL
//
// Parsing is a single synchronous pass with three layers:
//
//   - the line tokenizer drops comments and splits each line into a keyword and
//     a payload at '=';
//   - one directive parser per keyword splits the payload at ',' and checks the
//     field count;
//   - value parsers turn each field into a Numeric, an enum, a color and so on.
//
// Parse stops at the first malformed line and returns a *errors.ScriptError
// whose Code names the failure class (UNKNOWN_DIRECTIVE, UNKNOWN_ENUM_VALUE,
// MALFORMED_NUMBER, MISSING_FIELD, MALFORMED_LINE) and whose Details carry the
// offending directive, field and text. The package holds no mutable state and
// Parse is safe for concurrent use.
//
// Two quirks of the language are kept on purpose: payloads are cut at a second
// '=' (anything after it is dropped), and commas inside quoted values are not
// escaped.
package script
