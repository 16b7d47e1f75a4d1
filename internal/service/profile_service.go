package service

import (
	"context"
	"log/slog"

	"github.com/dataincloud/resource-api/internal/dto"
	"github.com/dataincloud/resource-api/internal/store"
)

// SaveOutcome reports which branch of ProfileService.Save was taken.
type SaveOutcome int

const (
	// SaveUpdated means an existing profile was replaced.
	SaveUpdated SaveOutcome = iota
	// SaveCreated means no profile existed and a new one was created.
	SaveCreated
)

func (o SaveOutcome) String() string {
	if o == SaveCreated {
		return "created"
	}
	return "updated"
}

// ProfileService provides CRUD and upsert operations on profiles.
// Profiles are identified by the owning user's ID.
//
// Besides validation and not-found failures, Create and Save can fail with an
// error wrapping store.ErrProfileExists when the profile is already stored.
type ProfileService interface {
	Create(ctx context.Context, in dto.ProfileDto) (dto.ProfileDto, error)
	ReadAll(ctx context.Context) ([]dto.ProfileDto, error)
	ReadByID(ctx context.Context, userID int64) (dto.ProfileDto, error)
	Update(ctx context.Context, in dto.ProfileDto) (dto.ProfileDto, error)
	DeleteByID(ctx context.Context, userID int64) (dto.ProfileDto, error)

	// Save updates the profile when it exists and creates it otherwise.
	//
	// The two steps are not atomic. If another request creates the same
	// profile between them, the create fails with an error wrapping
	// store.ErrProfileExists and is not retried.
	Save(ctx context.Context, in dto.ProfileDto) (dto.ProfileDto, SaveOutcome, error)
}

// ProfileServiceImpl implements the ProfileService interface
type ProfileServiceImpl struct {
	profileStore store.ProfileStore
	logger       *slog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileStore store.ProfileStore, logger *slog.Logger) ProfileService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileServiceImpl{
		profileStore: profileStore,
		logger:       logger.With("component", "profile_service"),
	}
}

// Create validates and stores a new profile. A profile that already exists
// for the user yields an error wrapping store.ErrProfileExists.
func (s *ProfileServiceImpl) Create(ctx context.Context, in dto.ProfileDto) (dto.ProfileDto, error) {
	if err := dto.Validate(in); err != nil {
		return dto.ProfileDto{}, err
	}

	created, err := s.profileStore.Create(ctx, dto.ProfileToDomain(in))
	if err != nil {
		return dto.ProfileDto{}, wrapError("create profile", err)
	}
	return dto.FromProfile(created), nil
}

// ReadAll returns every profile in user id order.
func (s *ProfileServiceImpl) ReadAll(ctx context.Context) ([]dto.ProfileDto, error) {
	profiles, err := s.profileStore.ReadAll(ctx)
	if err != nil {
		return nil, wrapError("read profiles", err)
	}
	return dto.FromProfiles(profiles), nil
}

// ReadByID returns a single profile or an error wrapping store.ErrProfileNotFound.
func (s *ProfileServiceImpl) ReadByID(ctx context.Context, userID int64) (dto.ProfileDto, error) {
	profile, err := s.profileStore.ReadByID(ctx, userID)
	if err != nil {
		return dto.ProfileDto{}, wrapError("read profile", err)
	}
	return dto.FromProfile(profile), nil
}

// Update replaces every field of an existing profile.
// An unknown user id yields an error wrapping store.ErrProfileNotFound.
func (s *ProfileServiceImpl) Update(ctx context.Context, in dto.ProfileDto) (dto.ProfileDto, error) {
	if err := dto.Validate(in); err != nil {
		return dto.ProfileDto{}, err
	}

	res, err := s.profileStore.Update(ctx, dto.ProfileToDomain(in))
	if err != nil {
		return dto.ProfileDto{}, wrapError("update profile", err)
	}

	updated, ok := res.Value()
	if !ok {
		return dto.ProfileDto{}, wrapError("update profile", store.ErrProfileNotFound)
	}
	return dto.FromProfile(updated), nil
}

// DeleteByID removes a profile and returns its final state.
func (s *ProfileServiceImpl) DeleteByID(ctx context.Context, userID int64) (dto.ProfileDto, error) {
	deleted, err := s.profileStore.Delete(ctx, userID)
	if err != nil {
		return dto.ProfileDto{}, wrapError("delete profile", err)
	}
	return dto.FromProfile(deleted), nil
}

// Save implements ProfileService.Save
func (s *ProfileServiceImpl) Save(ctx context.Context, in dto.ProfileDto) (dto.ProfileDto, SaveOutcome, error) {
	if err := dto.Validate(in); err != nil {
		return dto.ProfileDto{}, SaveUpdated, err
	}

	profile := dto.ProfileToDomain(in)
	res, err := s.profileStore.Update(ctx, profile)
	if err != nil {
		return dto.ProfileDto{}, SaveUpdated, wrapError("save profile", err)
	}
	if updated, ok := res.Value(); ok {
		return dto.FromProfile(updated), SaveUpdated, nil
	}

	s.logger.Debug("profile not found, creating", "user_id", in.UserID)
	created, err := s.profileStore.Create(ctx, profile)
	if err != nil {
		return dto.ProfileDto{}, SaveCreated, wrapError("save profile", err)
	}
	return dto.FromProfile(created), SaveCreated, nil
}
