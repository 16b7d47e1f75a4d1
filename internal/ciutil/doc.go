// Package ciutil provides utilities for CI and environment-specific functionality.
//
// It centralizes CI detection and the environment variables used by test
// tooling to locate the integration test database.
package ciutil
