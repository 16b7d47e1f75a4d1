// Package store defines the persistence contracts for users, posts and
// profiles, together with the error vocabulary every implementation maps
// its driver failures onto.
//
// Users and posts live in a relational store (see platform/postgres and
// platform/sqlite). Profiles live in a document store (see platform/bolt).
// Services depend only on the interfaces declared here.
package store
