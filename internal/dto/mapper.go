package dto

import (
	"slices"
	"time"

	"github.com/dataincloud/resource-api/internal/domain"
)

// UserCreateToDomain converts a UserCreateDto into a User without identity.
func UserCreateToDomain(in UserCreateDto) *domain.User {
	return &domain.User{
		Username:  in.Username,
		BirthDate: in.BirthDate,
	}
}

// UserToDomain converts a UserDto into a User.
func UserToDomain(in UserDto) *domain.User {
	return &domain.User{
		ID:        in.ID,
		Username:  in.Username,
		BirthDate: in.BirthDate,
	}
}

// FromUser converts a User into its wire representation.
func FromUser(u *domain.User) UserDto {
	return UserDto{
		ID:        u.ID,
		Username:  u.Username,
		BirthDate: u.BirthDate,
	}
}

// FromUsers converts a slice of users, preserving order.
func FromUsers(users []*domain.User) []UserDto {
	out := make([]UserDto, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

// PostCreateToDomain converts a PostCreateDto into a Post stamped with createdDate.
func PostCreateToDomain(in PostCreateDto, createdDate time.Time) *domain.Post {
	return &domain.Post{
		Header:      in.Header,
		Description: in.Description,
		CreatedDate: createdDate,
		UserID:      in.UserID,
	}
}

// PostToDomain converts a PostDto into a Post.
func PostToDomain(in PostDto) *domain.Post {
	return &domain.Post{
		ID:          in.ID,
		Header:      in.Header,
		Description: in.Description,
		CreatedDate: in.CreatedDate,
		UserID:      in.UserID,
	}
}

// FromPost converts a Post into its wire representation.
func FromPost(p *domain.Post) PostDto {
	return PostDto{
		ID:          p.ID,
		Header:      p.Header,
		Description: p.Description,
		CreatedDate: p.CreatedDate,
		UserID:      p.UserID,
	}
}

// FromPosts converts a slice of posts, preserving order.
func FromPosts(posts []*domain.Post) []PostDto {
	out := make([]PostDto, 0, len(posts))
	for _, p := range posts {
		out = append(out, FromPost(p))
	}
	return out
}

// ProfileToDomain converts a ProfileDto into a Profile.
// Nil optional fields stay nil; slices are copied.
func ProfileToDomain(in ProfileDto) *domain.Profile {
	return &domain.Profile{
		UserID:    in.UserID,
		FirstName: cloneString(in.FirstName),
		LastName:  cloneString(in.LastName),
		BirthDate: cloneTime(in.BirthDate),
		Photo:     slices.Clone(in.Photo),
		Tags:      slices.Clone(in.Tags),
	}
}

// FromProfile converts a Profile into its wire representation.
func FromProfile(p *domain.Profile) ProfileDto {
	return ProfileDto{
		UserID:    p.UserID,
		FirstName: cloneString(p.FirstName),
		LastName:  cloneString(p.LastName),
		BirthDate: cloneTime(p.BirthDate),
		Photo:     slices.Clone(p.Photo),
		Tags:      slices.Clone(p.Tags),
	}
}

// FromProfiles converts a slice of profiles, preserving order.
func FromProfiles(profiles []*domain.Profile) []ProfileDto {
	out := make([]ProfileDto, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, FromProfile(p))
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
