package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/permalist/internal/common"
	"github.com/dmitrijs2005/permalist/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const createQuery = `(?s)^INSERT\s+INTO\s+users\s*\(user_id,\s*password_hash,\s*family_code\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*$`
const getQuery = `(?s)^SELECT\s+user_id,\s*password_hash,\s*family_code\s+FROM\s+users\s+WHERE\s+user_id\s*=\s*\$1\s*$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(createQuery).
		WithArgs("alice", "digest", sql.NullString{String: "F1", Valid: true}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u := &models.User{
		UserID:       "alice",
		PasswordHash: "digest",
		FamilyCode:   sql.NullString{String: "F1", Valid: true},
	}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.UserID != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_Duplicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(createQuery).
		WithArgs("alice", "digest", sql.NullString{}).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	_, err := repo.Create(context.Background(), &models.User{UserID: "alice", PasswordHash: "digest"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(createQuery).
		WithArgs("alice", "digest", sql.NullString{}).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{UserID: "alice", PasswordHash: "digest"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"user_id", "password_hash", "family_code"}).
		AddRow("alice", "digest", "F1")
	mock.ExpectQuery(getQuery).
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.UserID != "alice" || !got.FamilyCode.Valid || got.FamilyCode.String != "F1" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByID_NullFamily(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"user_id", "password_hash", "family_code"}).
		AddRow("solo", "digest", nil)
	mock.ExpectQuery(getQuery).
		WithArgs("solo").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "solo")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.FamilyCode.Valid {
		t.Fatalf("expected NULL family code, got %+v", got.FamilyCode)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getQuery).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}
