// Package harness provides utilities for integration testing the gitdu CLI.
// It handles binary compilation, environment isolation, git fixtures and
// command execution.
//
// Environment variables managed:
//   - GITDU_HOME: Isolated per test (temp directory)
//   - GITDU_DEBUG: Disabled to reduce noise
package harness
