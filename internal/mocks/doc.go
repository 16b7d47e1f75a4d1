// Package mocks provides testify mocks of the store interfaces for service
// and handler tests.
package mocks
