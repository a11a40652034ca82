// Package testutil provides utilities for testing deckscript components.
//
// Key components:
//   - TestEnvironment: isolates a test from the user's configuration, log
//     file and DECKSCRIPT_ environment, and writes scripts and config files
//     into a temp directory
//   - FullExample: the reference card script, with its parsed commands
//
// Usage guidelines:
//   - Tests that go through config.Load or logging setup should start with
//     NewTestEnvironment
//   - Small scripts belong inline in the test; FullExample is for tests
//     that need a realistic document
package testutil
