// Package output renders display view models as styled terminal text.
//
// # Rendering Pipeline
//
//  1. A command builds a view model (display.ScriptResult, CheckResult or
//     StatsResult)
//  2. The Renderer executes the matching template from templates/
//  3. Template output contains style tags such as <Keyword>UNIT</Keyword>;
//     interpolated values are escaped so the tags stay well formed
//  4. lipbalm expands the tags with the styles registry (styles/), or strips
//     them for plain text
//  5. The result is written to the io.Writer
//
// Per-directive counts of StatsResult are drawn as a pterm table after the
// template; its ANSI codes are removed in plain text mode.
package output
