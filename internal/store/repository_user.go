package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/mkrasikov/go-filmorate/internal/logger"
	"github.com/mkrasikov/go-filmorate/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user rows in the "users" table and friendship pairs in the
// "friendship" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// storage-assigned id populated. The entity's in-memory friend set is
// ignored; friendships are recorded through [UserRepository.AddFriend].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, insertUser, user.Email, user.Login, user.Name, user.Birthday)
	if err := row.Scan(&user.ID); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*userRepository.CreateUser").Msg("error: scanning generated user id")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	log.Debug().Int64("user_id", user.ID).Str("login", user.Login).Msg("user saved")
	return user, nil
}

// UpdateUser replaces all scalar columns of the user row identified by
// user.ID. If no row matches, [ErrUserNotFound] is returned (logged at
// warning level) and nothing is inserted.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUser, user.Email, user.Login, user.Name, user.Birthday, user.ID)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*userRepository.UpdateUser").Int64("user_id", user.ID).Msg("error executing user update")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		log.Warn().Int64("user_id", user.ID).Msg("user not found")
		return models.User{}, fmt.Errorf("user %d: %w", user.ID, ErrUserNotFound)
	}

	return user, nil
}

// FindUserByID retrieves a single user row.
//
// Error handling:
//   - No matching row → [ErrUserNotFound], logged at warning level with the id.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, findUserByID, id)
	if err := row.Scan(&user.ID, &user.Email, &user.Login, &user.Name, &user.Birthday); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Int64("user_id", id).Msg("user not found")
			return models.User{}, fmt.Errorf("user %d: %w", id, ErrUserNotFound)
		}
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*userRepository.FindUserByID").Int64("user_id", id).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// GetAllUsers returns every user row; an empty slice when the table is empty.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllUsers)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*userRepository.GetAllUsers").Msg("failed to execute query for getting all users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanUsers(ctx, rows)
}

// AddFriend records a one-directional friendship pair.
//
// Error handling:
//   - Duplicate pair → [ErrFriendAlreadyAdded] (composite PK).
//   - Either user missing (FK violation) → [ErrUserNotFound].
func (r *userRepository) AddFriend(ctx context.Context, userID, friendID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, insertFriend, userID, friendID); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*userRepository.AddFriend").Int64("user_id", userID).Int64("friend_id", friendID).Msg("error inserting friendship")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrFriendAlreadyAdded
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("user %d or %d: %w", userID, friendID, ErrUserNotFound)
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// DeleteFriend removes a one-directional friendship pair. Deleting an
// absent pair is a no-op.
func (r *userRepository) DeleteFriend(ctx context.Context, userID, friendID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteFriend, userID, friendID); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*userRepository.DeleteFriend").Int64("user_id", userID).Int64("friend_id", friendID).Msg("error deleting friendship")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetFriendIDs returns the identifiers of the user's friends, in storage
// order. Used to populate the in-memory friend set on a [models.User].
func (r *userRepository) GetFriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getFriendIDs, userID)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*userRepository.GetFriendIDs").Int64("user_id", userID).Msg("failed to execute query for friend ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	friendIDs := make([]int64, 0, 16)
	for rows.Next() {
		var friendID int64
		if err := rows.Scan(&friendID); err != nil {
			log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*userRepository.GetFriendIDs").Msg("failed to scan friend id row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		friendIDs = append(friendIDs, friendID)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*userRepository.GetFriendIDs").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return friendIDs, nil
}

// GetFriends returns the full user records of the user's friends.
func (r *userRepository) GetFriends(ctx context.Context, userID int64) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getFriends, userID)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*userRepository.GetFriends").Int64("user_id", userID).Msg("failed to execute query for friends")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanUsers(ctx, rows)
}

// GetCommonFriends returns the users who are friends of both userID and
// otherID.
func (r *userRepository) GetCommonFriends(ctx context.Context, userID, otherID int64) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getCommonFriends, userID, otherID)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*userRepository.GetCommonFriends").Int64("user_id", userID).Int64("other_id", otherID).Msg("failed to execute query for common friends")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanUsers(ctx, rows)
}

// scanUsers drains a user result set. Friend sets are not populated here;
// see [UserRepository.GetFriendIDs].
func scanUsers(ctx context.Context, rows *sql.Rows) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users := make([]models.User, 0, 32)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Login, &user.Name, &user.Birthday); err != nil {
			log.Err(err).Str("func", "scanUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "scanUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}
