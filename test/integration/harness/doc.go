// Package harness provides utilities for integration testing the fastgit CLI.
// It handles binary compilation, environment isolation, repository fixtures
// and command execution.
//
// Environment variables managed:
//   - FASTGIT_HOME: Isolated per test (temp directory)
//   - FASTGIT_DEBUG: Disabled to reduce noise
//   - Other FASTGIT_* variables: Removed so flags and settings.json decide
package harness
