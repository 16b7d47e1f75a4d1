// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional YAML file. It provides typed
// settings for the HTTP server, the relational store and the profile
// document store.
package config
