package boltstore

import (
	"encoding/binary"
	"time"

	"github.com/dataincloud/resource-api/internal/domain"
)

// profileDocument is the stored JSON shape of a profile.
type profileDocument struct {
	UserID    int64      `json:"userId"`
	FirstName *string    `json:"firstName,omitempty"`
	LastName  *string    `json:"lastName,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	Photo     []byte     `json:"photo,omitempty"`
	Tags      []string   `json:"tags_list,omitempty"`
}

func toDocument(p *domain.Profile) profileDocument {
	doc := profileDocument{
		UserID:    p.UserID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Photo:     p.Photo,
	}
	if p.BirthDate != nil {
		t := p.BirthDate.UTC()
		doc.BirthDate = &t
	}
	if p.Tags != nil {
		doc.Tags = make([]string, 0, len(p.Tags))
		for _, tag := range p.Tags {
			doc.Tags = append(doc.Tags, string(tag))
		}
	}
	return doc
}

func (d profileDocument) toDomain() *domain.Profile {
	p := &domain.Profile{
		UserID:    d.UserID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Photo:     d.Photo,
	}
	if d.BirthDate != nil {
		t := d.BirthDate.UTC()
		p.BirthDate = &t
	}
	if d.Tags != nil {
		p.Tags = make([]domain.ProfileTag, 0, len(d.Tags))
		for _, tag := range d.Tags {
			p.Tags = append(p.Tags, domain.ProfileTag(tag))
		}
	}
	return p
}

// key encodes a user ID as the document key.
func key(userID int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(userID))
	return b
}
