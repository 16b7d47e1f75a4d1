// Package boltstore implements the profile document store on an embedded
// Bolt database. Each profile is a JSON document in the "profiles" bucket,
// keyed by the owning user's ID encoded as a big-endian uint64 so that
// iteration order matches numeric user order.
package boltstore
