package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/mkrasikov/go-filmorate/internal/logger"
	"github.com/mkrasikov/go-filmorate/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "email", "login", "name", "birthday"})
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := models.User{
		Email:    "neo@matrix.io",
		Login:    "neo",
		Name:     "Thomas Anderson",
		Birthday: models.NewDate(1964, time.September, 13),
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Email, user.Login, user.Name, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(42))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 42 {
		t.Errorf("expected ID=42, got %d", created.ID)
	}
	if created.Login != "neo" {
		t.Errorf("expected login neo, got %s", created.Login)
	}
}

func TestCreateUser_DBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "neo"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestUpdateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := models.User{ID: 42, Email: "neo@matrix.io", Login: "neo", Name: "Neo"}

	mock.ExpectExec("UPDATE users").
		WithArgs(user.Email, user.Login, user.Name, sqlmock.AnyArg(), user.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.UpdateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Neo" {
		t.Errorf("expected name Neo, got %s", updated.Name)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateUser(context.Background(), models.User{ID: 404, Login: "ghost"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	birthday := time.Date(1964, time.September, 13, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT user_id, email, login, name, birthday").
		WithArgs(int64(42)).
		WillReturnRows(userRows().AddRow(42, "neo@matrix.io", "neo", "Neo", birthday))

	user, err := repo.FindUserByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Login != "neo" {
		t.Errorf("expected login neo, got %s", user.Login)
	}
	if !user.Birthday.Equal(birthday) {
		t.Errorf("expected birthday %v, got %v", birthday, user.Birthday)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id, email, login, name, birthday").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetAllUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	birthday := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT user_id, email, login, name, birthday").
		WillReturnRows(userRows().
			AddRow(1, "a@example.com", "alpha", "Alpha", birthday).
			AddRow(2, "b@example.com", "bravo", "Bravo", birthday))

	users, err := repo.GetAllUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Login != "alpha" || users[1].Login != "bravo" {
		t.Errorf("unexpected logins: %q, %q", users[0].Login, users[1].Login)
	}
}

func TestAddFriend_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO friendship").
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.AddFriend(context.Background(), 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAddFriend_Duplicate(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO friendship").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.AddFriend(context.Background(), 1, 2)
	if !errors.Is(err, ErrFriendAlreadyAdded) {
		t.Fatalf("expected ErrFriendAlreadyAdded, got %v", err)
	}
}

func TestAddFriend_UnknownUser(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO friendship").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	err := repo.AddFriend(context.Background(), 1, 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteFriend_Idempotent(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	// removing an absent pair affects zero rows and is still a success
	mock.ExpectExec("DELETE FROM friendship").
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteFriend(context.Background(), 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetFriendIDs_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT friend_id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"friend_id"}).AddRow(2).AddRow(3))

	friendIDs, err := repo.GetFriendIDs(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(friendIDs) != 2 || friendIDs[0] != 2 || friendIDs[1] != 3 {
		t.Errorf("unexpected friend ids: %v", friendIDs)
	}
}

func TestGetFriends_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	birthday := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT u.user_id").
		WithArgs(int64(1)).
		WillReturnRows(userRows().AddRow(2, "b@example.com", "bravo", "Bravo", birthday))

	friends, err := repo.GetFriends(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(friends) != 1 || friends[0].Login != "bravo" {
		t.Errorf("unexpected friends: %v", friends)
	}
}

func TestGetCommonFriends_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	birthday := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT u.user_id").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(userRows().AddRow(3, "c@example.com", "charlie", "Charlie", birthday))

	common, err := repo.GetCommonFriends(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(common) != 1 || common[0].ID != 3 {
		t.Errorf("unexpected common friends: %v", common)
	}
}

func TestGetCommonFriends_NoOverlap(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT u.user_id").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(userRows())

	common, err := repo.GetCommonFriends(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(common) != 0 {
		t.Errorf("expected no common friends, got %v", common)
	}
}
