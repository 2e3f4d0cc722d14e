package service

import (
	"context"
	"fmt"

	"github.com/mkrasikov/go-filmorate/internal/logger"
	"github.com/mkrasikov/go-filmorate/internal/store"
	"github.com/mkrasikov/go-filmorate/internal/validators"
	"github.com/mkrasikov/go-filmorate/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

// NewUserService wires the user business logic over the user repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

// CreateUser validates the user and persists it. An empty display name is
// substituted with the login before saving.
func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, user); err != nil {
		log.Warn().Err(err).Str("login", user.Login).Msg("user rejected by validation")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.userRepository.CreateUser(ctx, defaultName(user))
}

// UpdateUser validates the user, including the id this time, and replaces the
// stored record. An empty display name is substituted with the login.
func (s *userService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	fields := []string{validators.FieldUserID, validators.FieldEmail, validators.FieldLogin, validators.FieldBirthday}
	if err := s.validator.Validate(ctx, user, fields...); err != nil {
		log.Warn().Err(err).Int64("user_id", user.ID).Msg("user rejected by validation")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.userRepository.UpdateUser(ctx, defaultName(user))
}

// GetUserByID returns the user with the in-memory friend set populated.
func (s *userService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	friendIDs, err := s.userRepository.GetFriendIDs(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	for _, friendID := range friendIDs {
		user.AddFriend(friendID)
	}

	return user, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.GetAllUsers(ctx)
}

// AddFriend records a one-directional friendship: userID starts following
// friendID, nothing is written in the opposite direction. Befriending
// yourself is rejected.
func (s *userService) AddFriend(ctx context.Context, userID, friendID int64) error {
	log := logger.FromContext(ctx)

	if userID == friendID {
		log.Warn().Int64("user_id", userID).Msg("attempt to befriend oneself")
		return fmt.Errorf("user %d: %w", userID, ErrSelfFriendship)
	}

	return s.userRepository.AddFriend(ctx, userID, friendID)
}

// DeleteFriend removes a one-directional friendship. Both users must exist;
// removing an absent pair between existing users is a no-op.
func (s *userService) DeleteFriend(ctx context.Context, userID, friendID int64) error {
	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.userRepository.FindUserByID(ctx, friendID); err != nil {
		return err
	}

	return s.userRepository.DeleteFriend(ctx, userID, friendID)
}

// GetFriends returns the users that userID follows. The owner must exist.
func (s *userService) GetFriends(ctx context.Context, userID int64) ([]models.User, error) {
	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.userRepository.GetFriends(ctx, userID)
}

// GetCommonFriends returns the intersection of two users' friend lists.
// Unknown users simply produce an empty intersection.
func (s *userService) GetCommonFriends(ctx context.Context, userID, otherID int64) ([]models.User, error) {
	return s.userRepository.GetCommonFriends(ctx, userID, otherID)
}

// defaultName substitutes the login for an empty display name.
func defaultName(user models.User) models.User {
	if user.Name == "" {
		user.Name = user.Login
	}
	return user
}
