package repository

import (
	"context"
	"sync"
	"time"

	"ratfit/models"
)

// MemoryRepository keeps every entity in process memory. Users and gyms
// are looked up by id in maps; lookups by username and the per-user
// check-in and booking lists are linear scans over insertion order.
type MemoryRepository struct {
	mu sync.RWMutex

	users     map[string]models.User
	userOrder []string
	gyms      map[string]models.Gym
	gymOrder  []string
	bookings  []models.Booking
	checkins  []models.Checkin

	now func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	r := &MemoryRepository{
		users: make(map[string]models.User),
		gyms:  make(map[string]models.Gym),
		now:   time.Now,
	}
	for _, g := range SeedGyms() {
		r.gyms[g.ID] = g
		r.gymOrder = append(r.gymOrder, g.ID)
	}
	return r
}

func (r *MemoryRepository) GetUser(ctx context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return copyUser(u), nil
}

func (r *MemoryRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.userOrder {
		if u := r.users[id]; u.Username == username {
			return copyUser(u), nil
		}
	}
	return models.User{}, ErrNotFound
}

// CreateUser stores a new user with a fresh id and a zero streak. It does
// not check username uniqueness; callers do.
func (r *MemoryRepository) CreateUser(ctx context.Context, in models.NewUser) (models.User, error) {
	awayIDs := make([]string, len(in.AwayGymIDs))
	copy(awayIDs, in.AwayGymIDs)
	u := models.User{
		ID:         newID(),
		Username:   in.Username,
		HomeGymID:  in.HomeGymID,
		AwayGymIDs: awayIDs,
		Streak:     0,
		CreatedAt:  r.now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	r.userOrder = append(r.userOrder, u.ID)
	return copyUser(u), nil
}

// UpdateUserStreak replaces the stored record with a copy carrying the new
// streak. Snapshots returned earlier are left untouched.
func (r *MemoryRepository) UpdateUserStreak(ctx context.Context, userID string, streak int) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return models.User{}, ErrNotFound
	}
	updated := copyUser(u)
	updated.Streak = streak
	r.users[userID] = updated
	return copyUser(updated), nil
}

func (r *MemoryRepository) GetAllGyms(ctx context.Context) ([]models.Gym, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	gyms := make([]models.Gym, 0, len(r.gymOrder))
	for _, id := range r.gymOrder {
		gyms = append(gyms, r.gyms[id])
	}
	return gyms, nil
}

func (r *MemoryRepository) GetGym(ctx context.Context, id string) (models.Gym, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.gyms[id]
	if !ok {
		return models.Gym{}, ErrNotFound
	}
	return g, nil
}

// GetGymsByIDs returns the gyms that resolve, in the order of ids. Unknown
// ids are dropped.
func (r *MemoryRepository) GetGymsByIDs(ctx context.Context, ids []string) ([]models.Gym, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	gyms := make([]models.Gym, 0, len(ids))
	for _, id := range ids {
		if g, ok := r.gyms[id]; ok {
			gyms = append(gyms, g)
		}
	}
	return gyms, nil
}

// IncrementGymCheckins adds one check-in and RevenuePerCheckin to the gym.
// An unknown gym id is ignored.
func (r *MemoryRepository) IncrementGymCheckins(ctx context.Context, gymID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.gyms[gymID]
	if !ok {
		return nil
	}
	g.Checkins++
	g.Revenue += RevenuePerCheckin
	r.gyms[gymID] = g
	return nil
}

func (r *MemoryRepository) CreateBooking(ctx context.Context, in models.NewBooking) (models.Booking, error) {
	b := models.Booking{
		ID:        newID(),
		UserID:    in.UserID,
		GymID:     in.GymID,
		Date:      in.Date,
		CreatedAt: r.now(),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, b)
	return b, nil
}

func (r *MemoryRepository) GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *MemoryRepository) CreateCheckin(ctx context.Context, in models.NewCheckin) (models.Checkin, error) {
	c := models.Checkin{
		ID:        newID(),
		UserID:    in.UserID,
		GymID:     in.GymID,
		CreatedAt: r.now(),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkins = append(r.checkins, c)
	return c, nil
}

func (r *MemoryRepository) GetUserCheckins(ctx context.Context, userID string) ([]models.Checkin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []models.Checkin
	for _, c := range r.checkins {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}
