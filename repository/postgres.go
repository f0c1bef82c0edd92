package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ratfit/models"

	"github.com/lib/pq"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id           TEXT PRIMARY KEY,
		username     TEXT NOT NULL UNIQUE,
		home_gym_id  TEXT NOT NULL,
		away_gym_ids TEXT[] NOT NULL DEFAULT '{}',
		streak       INTEGER NOT NULL DEFAULT 0,
		created_at   TIMESTAMPTZ NOT NULL,
		seq          BIGSERIAL
	)`,
	`CREATE TABLE IF NOT EXISTS gyms (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		location          TEXT NOT NULL,
		checkins          INTEGER NOT NULL DEFAULT 0,
		revenue           INTEGER NOT NULL DEFAULT 0,
		is_ratfit_assured BOOLEAN NOT NULL DEFAULT FALSE,
		qr_code           TEXT NOT NULL DEFAULT '',
		seq               BIGSERIAL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		gym_id     TEXT NOT NULL,
		date       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		seq        BIGSERIAL
	)`,
	`CREATE TABLE IF NOT EXISTS checkins (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		gym_id     TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		seq        BIGSERIAL
	)`,
}

const (
	uniqueViolation    = "23505"
	usernameConstraint = "users_username_key"

	userColumns = "id, username, home_gym_id, away_gym_ids, streak, created_at"
	gymColumns  = "id, name, location, checkins, revenue, is_ratfit_assured, qr_code"
)

// PostgresRepository stores entities in Postgres. Insertion order is kept
// through the seq column of each table.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) PostgresRepository {
	return PostgresRepository{db: db}
}

// Migrate creates the tables if needed and inserts the seed gyms that are
// not present yet. Existing gym counters are never reset.
func (r PostgresRepository) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	for _, g := range SeedGyms() {
		_, err := r.db.ExecContext(
			ctx,
			"INSERT INTO gyms ("+gymColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7) "+
				"ON CONFLICT (id) DO NOTHING",
			g.ID, g.Name, g.Location, g.Checkins, g.Revenue, g.IsRatFitAssured, g.QRCode,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.HomeGymID,
		pq.Array(&u.AwayGymIDs),
		&u.Streak,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	if u.AwayGymIDs == nil {
		u.AwayGymIDs = []string{}
	}
	return u, nil
}

func scanGym(row rowScanner) (models.Gym, error) {
	var g models.Gym
	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Location,
		&g.Checkins,
		&g.Revenue,
		&g.IsRatFitAssured,
		&g.QRCode,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Gym{}, ErrNotFound
		}
		return models.Gym{}, err
	}
	return g, nil
}

func (r PostgresRepository) GetUser(
	ctx context.Context,
	id string,
) (models.User, error) {
	row := r.db.QueryRowContext(
		ctx,
		"SELECT "+userColumns+" FROM users WHERE id=$1",
		id,
	)
	return scanUser(row)
}

func (r PostgresRepository) GetUserByUsername(
	ctx context.Context,
	username string,
) (models.User, error) {
	row := r.db.QueryRowContext(
		ctx,
		"SELECT "+userColumns+" FROM users WHERE username=$1 ORDER BY seq LIMIT 1",
		username,
	)
	return scanUser(row)
}

func (r PostgresRepository) CreateUser(
	ctx context.Context,
	in models.NewUser,
) (models.User, error) {
	awayIDs := make([]string, len(in.AwayGymIDs))
	copy(awayIDs, in.AwayGymIDs)
	u := models.User{
		ID:         newID(),
		Username:   in.Username,
		HomeGymID:  in.HomeGymID,
		AwayGymIDs: awayIDs,
		Streak:     0,
		CreatedAt:  time.Now().UTC(),
	}
	_, err := r.db.ExecContext(
		ctx,
		"INSERT INTO users (id, username, home_gym_id, away_gym_ids, streak, created_at) "+
			"VALUES ($1, $2, $3, $4, $5, $6)",
		u.ID, u.Username, u.HomeGymID, pq.Array(u.AwayGymIDs), u.Streak, u.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) &&
			pqErr.Code == uniqueViolation &&
			pqErr.Constraint == usernameConstraint {
			return models.User{}, ErrDuplicateUsername
		}
		return models.User{}, err
	}
	return u, nil
}

func (r PostgresRepository) UpdateUserStreak(
	ctx context.Context,
	userID string,
	streak int,
) (models.User, error) {
	row := r.db.QueryRowContext(
		ctx,
		"UPDATE users SET streak=$2 WHERE id=$1 RETURNING "+userColumns,
		userID, streak,
	)
	return scanUser(row)
}

func (r PostgresRepository) GetAllGyms(ctx context.Context) ([]models.Gym, error) {
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT "+gymColumns+" FROM gyms ORDER BY seq",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gyms []models.Gym
	for rows.Next() {
		g, err := scanGym(rows)
		if err != nil {
			return nil, err
		}
		gyms = append(gyms, g)
	}
	return gyms, rows.Err()
}

func (r PostgresRepository) GetGym(
	ctx context.Context,
	id string,
) (models.Gym, error) {
	row := r.db.QueryRowContext(
		ctx,
		"SELECT "+gymColumns+" FROM gyms WHERE id=$1",
		id,
	)
	return scanGym(row)
}

// GetGymsByIDs returns the resolvable gyms in the order of ids; unknown ids
// are dropped.
func (r PostgresRepository) GetGymsByIDs(
	ctx context.Context,
	ids []string,
) ([]models.Gym, error) {
	if len(ids) == 0 {
		return []models.Gym{}, nil
	}
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT "+gymColumns+" FROM gyms WHERE id = ANY($1)",
		pq.Array(ids),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]models.Gym, len(ids))
	for rows.Next() {
		g, err := scanGym(rows)
		if err != nil {
			return nil, err
		}
		byID[g.ID] = g
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	gyms := make([]models.Gym, 0, len(ids))
	for _, id := range ids {
		if g, ok := byID[id]; ok {
			gyms = append(gyms, g)
		}
	}
	return gyms, nil
}

// IncrementGymCheckins is a no-op for unknown gym ids.
func (r PostgresRepository) IncrementGymCheckins(
	ctx context.Context,
	gymID string,
) error {
	_, err := r.db.ExecContext(
		ctx,
		"UPDATE gyms SET checkins = checkins + 1, revenue = revenue + $2 WHERE id=$1",
		gymID, RevenuePerCheckin,
	)
	return err
}

func (r PostgresRepository) CreateBooking(
	ctx context.Context,
	in models.NewBooking,
) (models.Booking, error) {
	b := models.Booking{
		ID:        newID(),
		UserID:    in.UserID,
		GymID:     in.GymID,
		Date:      in.Date,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.db.ExecContext(
		ctx,
		"INSERT INTO bookings (id, user_id, gym_id, date, created_at) VALUES ($1, $2, $3, $4, $5)",
		b.ID, b.UserID, b.GymID, b.Date, b.CreatedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

func (r PostgresRepository) GetUserBookings(
	ctx context.Context,
	userID string,
) ([]models.Booking, error) {
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT id, user_id, gym_id, date, created_at FROM bookings WHERE user_id=$1 ORDER BY seq",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.GymID,
			&b.Date,
			&b.CreatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r PostgresRepository) CreateCheckin(
	ctx context.Context,
	in models.NewCheckin,
) (models.Checkin, error) {
	c := models.Checkin{
		ID:        newID(),
		UserID:    in.UserID,
		GymID:     in.GymID,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.db.ExecContext(
		ctx,
		"INSERT INTO checkins (id, user_id, gym_id, created_at) VALUES ($1, $2, $3, $4)",
		c.ID, c.UserID, c.GymID, c.CreatedAt,
	)
	if err != nil {
		return models.Checkin{}, err
	}
	return c, nil
}

func (r PostgresRepository) GetUserCheckins(
	ctx context.Context,
	userID string,
) ([]models.Checkin, error) {
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT id, user_id, gym_id, created_at FROM checkins WHERE user_id=$1 ORDER BY seq",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkins []models.Checkin
	for rows.Next() {
		var c models.Checkin
		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.GymID,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		checkins = append(checkins, c)
	}
	return checkins, rows.Err()
}
