// Package service provides the resource services for users, posts and
// profiles.
//
// Services validate incoming DTOs, map them to domain entities, call the
// stores and map results back. They hold no state of their own beyond
// their store references.
package service
