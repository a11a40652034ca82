// Package inspect walks a parsed script the way a layout engine would.
//
// The parser accepts any order of commands. Consumers that lay out cards need
// more: every IMAGE and TEXTFONT belongs to the visual block opened by the
// closest VISUAL and closed by ENDVISUAL. Group builds that structure and
// records what does not fit it; Validate turns the first problem into an
// UNBALANCED_VISUAL error. Summarize counts what a script contains.
package inspect
