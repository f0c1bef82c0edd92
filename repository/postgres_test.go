package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"ratfit/models"
	"ratfit/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var (
	userCols = []string{"id", "username", "home_gym_id", "away_gym_ids", "streak", "created_at"}
	gymCols  = []string{"id", "name", "location", "checkins", "revenue", "is_ratfit_assured", "qr_code"}
)

func newMockRepo(t *testing.T) (repository.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewPostgresRepository(db), mock
}

func TestPostgresRepository_Migrate(t *testing.T) {
	repo, mock := newMockRepo(t)

	for _, table := range []string{"users", "gyms", "bookings", "checkins"} {
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS " + table)).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for _, g := range repository.SeedGyms() {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO gyms")).
			WithArgs(g.ID, g.Name, g.Location, g.Checkins, g.Revenue, g.IsRatFitAssured, g.QRCode).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	require.NoError(t, repo.Migrate(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetUserByUsername(t *testing.T) {
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	type args struct {
		username string
	}
	tests := []struct {
		name    string
		args    args
		prepare func(sqlmock.Sqlmock)
		want    models.User
		wantErr error
	}{
		{
			name: "found",
			args: args{username: "alice"},
			prepare: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username=$1")).
					WithArgs("alice").
					WillReturnRows(sqlmock.NewRows(userCols).
						AddRow("u1", "alice", "powerhouse", "{iron-temple,fit-zone}", 3, created))
			},
			want: models.User{
				ID:         "u1",
				Username:   "alice",
				HomeGymID:  "powerhouse",
				AwayGymIDs: []string{"iron-temple", "fit-zone"},
				Streak:     3,
				CreatedAt:  created,
			},
		},
		{
			name: "missing",
			args: args{username: "ghost"},
			prepare: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username=$1")).
					WithArgs("ghost").
					WillReturnRows(sqlmock.NewRows(userCols))
			},
			wantErr: repository.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.prepare(mock)

			got, err := repo.GetUserByUsername(context.Background(), tt.args.username)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRepository_CreateUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(sqlmock.AnyArg(), "alice", "powerhouse", sqlmock.AnyArg(), 0, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u, err := repo.CreateUser(context.Background(), models.NewUser{
		Username:   "alice",
		HomeGymID:  "powerhouse",
		AwayGymIDs: []string{"iron-temple"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, 0, u.Streak)
	require.Equal(t, []string{"iron-temple"}, u.AwayGymIDs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateUserUniqueViolation(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{
			name:    "username taken",
			dbErr:   &pq.Error{Code: "23505", Constraint: "users_username_key"},
			wantErr: repository.ErrDuplicateUsername,
		},
		{
			name:  "other unique constraint",
			dbErr: &pq.Error{Code: "23505", Constraint: "users_pkey"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
				WillReturnError(tt.dbErr)

			_, err := repo.CreateUser(context.Background(), models.NewUser{
				Username:  "alice",
				HomeGymID: "powerhouse",
			})
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NotErrorIs(t, err, repository.ErrDuplicateUsername)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRepository_UpdateUserStreak(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET streak=$2 WHERE id=$1")).
		WithArgs("u1", 4).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u1", "alice", "powerhouse", "{}", 4, created))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET streak=$2 WHERE id=$1")).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows(userCols))

	u, err := repo.UpdateUserStreak(context.Background(), "u1", 4)
	require.NoError(t, err)
	require.Equal(t, 4, u.Streak)
	require.Equal(t, []string{}, u.AwayGymIDs)

	_, err = repo.UpdateUserStreak(context.Background(), "missing", 1)
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetGymsByIDs(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM gyms WHERE id = ANY($1)")).
		WillReturnRows(sqlmock.NewRows(gymCols).
			AddRow("powerhouse", "PowerHouse Fitness", "Downtown", 423, 4230, true, "powerhouse-qr").
			AddRow("fit-zone", "FitZone Central", "Midtown", 356, 3560, true, "fit-zone-qr"))

	gyms, err := repo.GetGymsByIDs(context.Background(), []string{"fit-zone", "nope", "powerhouse"})
	require.NoError(t, err)
	require.Len(t, gyms, 2)
	require.Equal(t, "fit-zone", gyms[0].ID)
	require.Equal(t, "powerhouse", gyms[1].ID)

	empty, err := repo.GetGymsByIDs(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, empty)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_IncrementGymCheckins(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE gyms SET checkins = checkins + 1, revenue = revenue + $2 WHERE id=$1")).
		WithArgs("powerhouse", repository.RevenuePerCheckin).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE gyms SET checkins")).
		WithArgs("unknown", repository.RevenuePerCheckin).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.IncrementGymCheckins(context.Background(), "powerhouse"))
	require.NoError(t, repo.IncrementGymCheckins(context.Background(), "unknown"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetUserCheckins(t *testing.T) {
	repo, mock := newMockRepo(t)
	t1 := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("FROM checkins WHERE user_id=$1 ORDER BY seq")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "gym_id", "created_at"}).
			AddRow("c1", "u1", "powerhouse", t1).
			AddRow("c2", "u1", "fit-zone", t2))

	checkins, err := repo.GetUserCheckins(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, []models.Checkin{
		{ID: "c1", UserID: "u1", GymID: "powerhouse", CreatedAt: t1},
		{ID: "c2", UserID: "u1", GymID: "fit-zone", CreatedAt: t2},
	}, checkins)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateBookingError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(sqlmock.AnyArg(), "u1", "iron-temple", "2026-11-01", sqlmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateBooking(context.Background(), models.NewBooking{
		UserID: "u1",
		GymID:  "iron-temple",
		Date:   "2026-11-01",
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
