// Package testutils provides testing utilities for the resource API.
//
// This package contains helpers for:
//   - Creating random but valid domain entities and request payloads
//   - Opening SQLite and Bolt stores on temporary files
//   - Executing JSON requests against test servers and asserting responses
//   - Capturing log output
//
// Helper functions follow these naming conventions:
//   - Create*: Create entities or payloads in memory
//   - Setup*: Open backing stores that are closed on test cleanup
//   - Do*: Execute HTTP requests
//   - Assert*: Verify conditions and fail the test otherwise
package testutils
