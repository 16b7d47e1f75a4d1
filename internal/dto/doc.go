// Package dto provides the data transfer objects exchanged over HTTP, their
// validation rules and explicit mappers to and from the domain entities.
package dto
