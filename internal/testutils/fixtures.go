package testutils

import (
	"time"
	"unicode/utf8"

	"github.com/Pallinder/go-randomdata"
	"github.com/dataincloud/resource-api/internal/domain"
	"github.com/dataincloud/resource-api/internal/dto"
)

// RandomUsername returns a non-blank username within the length limit.
func RandomUsername() string {
	return truncate(randomdata.SillyName(), domain.UsernameMaxLength)
}

// RandomBirthDate returns a UTC midnight date between 1950 and 2005.
func RandomBirthDate() time.Time {
	return time.Date(
		randomdata.Number(1950, 2006),
		time.Month(randomdata.Number(1, 13)),
		randomdata.Number(1, 29),
		0, 0, 0, 0, time.UTC)
}

// RandomHeader returns a post header within the length bounds.
func RandomHeader() string {
	header := randomdata.Adjective() + " " + randomdata.Noun()
	for utf8.RuneCountInString(header) < domain.HeaderMinLength {
		header += " post"
	}
	return truncate(header, domain.HeaderMaxLength)
}

// CreateTestUser creates a valid user without an identity.
// It does not save the user to any store.
func CreateTestUser() *domain.User {
	return &domain.User{
		Username:  RandomUsername(),
		BirthDate: RandomBirthDate(),
	}
}

// CreateTestPost creates a valid post owned by userID without an identity.
func CreateTestPost(userID int64) *domain.Post {
	return &domain.Post{
		Header:      RandomHeader(),
		Description: randomdata.Paragraph(),
		CreatedDate: time.Now().UTC().Truncate(time.Microsecond),
		UserID:      userID,
	}
}

// CreateTestProfile creates a profile for userID with every optional field set.
func CreateTestProfile(userID int64) *domain.Profile {
	firstName := randomdata.FirstName(randomdata.RandomGender)
	lastName := randomdata.LastName()
	birthDate := RandomBirthDate()
	return &domain.Profile{
		UserID:    userID,
		FirstName: &firstName,
		LastName:  &lastName,
		BirthDate: &birthDate,
		Photo:     []byte(randomdata.SillyName()),
		Tags:      []domain.ProfileTag{domain.ProfileTagBlog},
	}
}

// CreateUserRequest returns a valid user creation payload.
func CreateUserRequest() dto.UserCreateDto {
	return dto.UserCreateDto{
		Username:  RandomUsername(),
		BirthDate: RandomBirthDate(),
	}
}

// CreatePostRequest returns a valid post creation payload for userID.
func CreatePostRequest(userID int64) dto.PostCreateDto {
	return dto.PostCreateDto{
		Header:      RandomHeader(),
		Description: randomdata.Paragraph(),
		UserID:      userID,
	}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
