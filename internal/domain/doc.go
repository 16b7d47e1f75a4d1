// Package domain contains the core entities of the application: users, the
// posts they write and their one-to-one profiles. Entities are plain value
// holders that validate their own invariants and know nothing about wire
// formats or storage.
package domain
