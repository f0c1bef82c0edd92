package service

import (
	"context"
	"errors"
	"fmt"

	"ratfit/models"
	"ratfit/repository"

	"go.uber.org/zap"
)

//go:generate mockgen -destination=./mocks/mock_repository.go -package=mocks ratfit/service Repository

type Repository interface {
	GetUser(ctx context.Context, id string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	CreateUser(ctx context.Context, in models.NewUser) (models.User, error)
	UpdateUserStreak(ctx context.Context, userID string, streak int) (models.User, error)
	GetAllGyms(ctx context.Context) ([]models.Gym, error)
	GetGym(ctx context.Context, id string) (models.Gym, error)
	GetGymsByIDs(ctx context.Context, ids []string) ([]models.Gym, error)
	IncrementGymCheckins(ctx context.Context, gymID string) error
	CreateBooking(ctx context.Context, in models.NewBooking) (models.Booking, error)
	GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	CreateCheckin(ctx context.Context, in models.NewCheckin) (models.Checkin, error)
	GetUserCheckins(ctx context.Context, userID string) ([]models.Checkin, error)
}

const (
	// RecentActivityLimit caps the check-ins returned with a profile.
	RecentActivityLimit = 5
	// checkinsPerActiveUser turns total check-ins into a rough active user count.
	checkinsPerActiveUser = 3

	checkinURIPrefix = "ratfit://checkin/"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrGymNotFound   = errors.New("gym not found")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports input that is well formed but refers to
// entities that do not exist.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
}

type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return Service{
		repo: repo,
		log:  log,
	}
}

type GymStats struct {
	TotalCheckins int `json:"totalCheckins"`
	ActiveUsers   int `json:"activeUsers"`
	TotalRevenue  int `json:"totalRevenue"`
}

type GymsOverview struct {
	Gyms  []models.Gym `json:"gyms"`
	Stats GymStats     `json:"stats"`
}

type Profile struct {
	User           models.User      `json:"user"`
	HomeGym        *models.Gym      `json:"homeGym"`
	AwayGym        *models.Gym      `json:"awayGym"`
	AwayGyms       []models.Gym     `json:"awayGyms"`
	RecentActivity []models.Checkin `json:"recentActivity"`
}

type CheckinCode struct {
	GymID      string `json:"gymId"`
	QRCode     string `json:"qrCode"`
	CheckinURI string `json:"checkinUri"`
}

// Signup creates a user after making sure the username is free and the
// home gym exists. The steps are not atomic; a store that rejects the
// duplicate itself still yields ErrUsernameTaken.
func (s Service) Signup(
	ctx context.Context,
	in models.NewUser,
) (models.User, error) {
	_, err := s.repo.GetUserByUsername(ctx, in.Username)
	if err == nil {
		return models.User{}, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return models.User{}, err
	}

	if _, err := s.repo.GetGym(ctx, in.HomeGymID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.User{}, &ValidationError{Fields: []FieldError{
				{Field: "homeGymId", Message: "unknown gym " + in.HomeGymID},
			}}
		}
		return models.User{}, err
	}

	if in.AwayGymIDs == nil {
		in.AwayGymIDs = []string{}
	}
	user, err := s.repo.CreateUser(ctx, in)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}
	s.log.Info("user created",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("home_gym_id", user.HomeGymID),
	)
	return user, nil
}

// CheckIn records a check-in, bumps the gym counters and adds one to the
// user's streak. The check-in is kept even when the user cannot be found
// for the streak update.
func (s Service) CheckIn(
	ctx context.Context,
	in models.NewCheckin,
) (models.Checkin, error) {
	checkin, err := s.repo.CreateCheckin(ctx, in)
	if err != nil {
		return models.Checkin{}, err
	}
	if err := s.repo.IncrementGymCheckins(ctx, in.GymID); err != nil {
		return models.Checkin{}, err
	}

	user, err := s.repo.GetUser(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("streak not updated, user missing",
				zap.String("checkin_id", checkin.ID),
				zap.String("user_id", in.UserID),
			)
			return checkin, nil
		}
		return models.Checkin{}, err
	}
	updated, err := s.repo.UpdateUserStreak(ctx, user.ID, user.Streak+1)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return models.Checkin{}, err
	}

	s.log.Info("check-in recorded",
		zap.String("checkin_id", checkin.ID),
		zap.String("user_id", in.UserID),
		zap.String("gym_id", in.GymID),
		zap.Int("streak", updated.Streak),
	)
	return checkin, nil
}

// Book stores a booking as given. Dates are free text and overlapping
// bookings are allowed.
func (s Service) Book(
	ctx context.Context,
	in models.NewBooking,
) (models.Booking, error) {
	booking, err := s.repo.CreateBooking(ctx, in)
	if err != nil {
		return models.Booking{}, err
	}
	s.log.Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("user_id", booking.UserID),
		zap.String("gym_id", booking.GymID),
		zap.String("date", booking.Date),
	)
	return booking, nil
}

func (s Service) ListGyms(ctx context.Context) (GymsOverview, error) {
	gyms, err := s.repo.GetAllGyms(ctx)
	if err != nil {
		return GymsOverview{}, err
	}
	if gyms == nil {
		gyms = []models.Gym{}
	}

	var stats GymStats
	for _, g := range gyms {
		stats.TotalCheckins += g.Checkins
		stats.TotalRevenue += g.Revenue
	}
	stats.ActiveUsers = stats.TotalCheckins / checkinsPerActiveUser

	return GymsOverview{Gyms: gyms, Stats: stats}, nil
}

func (s Service) GetGym(
	ctx context.Context,
	id string,
) (models.Gym, error) {
	gym, err := s.repo.GetGym(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Gym{}, ErrGymNotFound
		}
		return models.Gym{}, err
	}
	return gym, nil
}

// GymCheckinCode returns what a gym's check-in QR code encodes.
func (s Service) GymCheckinCode(
	ctx context.Context,
	id string,
) (CheckinCode, error) {
	gym, err := s.GetGym(ctx, id)
	if err != nil {
		return CheckinCode{}, err
	}
	return CheckinCode{
		GymID:      gym.ID,
		QRCode:     gym.QRCode,
		CheckinURI: checkinURIPrefix + gym.ID,
	}, nil
}

// GetProfile assembles the user with their gyms and the most recent
// check-ins, newest first.
func (s Service) GetProfile(
	ctx context.Context,
	username string,
) (Profile, error) {
	user, err := s.userByUsername(ctx, username)
	if err != nil {
		return Profile{}, err
	}

	homeGym, err := s.optionalGym(ctx, user.HomeGymID)
	if err != nil {
		return Profile{}, err
	}

	var awayGym *models.Gym
	if len(user.AwayGymIDs) > 0 {
		awayGym, err = s.optionalGym(ctx, user.AwayGymIDs[0])
		if err != nil {
			return Profile{}, err
		}
	}

	awayGyms, err := s.repo.GetGymsByIDs(ctx, user.AwayGymIDs)
	if err != nil {
		return Profile{}, err
	}
	if skipped := len(user.AwayGymIDs) - len(awayGyms); skipped > 0 {
		s.log.Debug("away gyms not resolved",
			zap.String("user_id", user.ID),
			zap.Int("skipped", skipped),
		)
	}
	if awayGyms == nil {
		awayGyms = []models.Gym{}
	}

	checkins, err := s.repo.GetUserCheckins(ctx, user.ID)
	if err != nil {
		return Profile{}, err
	}

	return Profile{
		User:           user,
		HomeGym:        homeGym,
		AwayGym:        awayGym,
		AwayGyms:       awayGyms,
		RecentActivity: recentFirst(checkins, RecentActivityLimit),
	}, nil
}

func (s Service) GetUserBookings(
	ctx context.Context,
	username string,
) ([]models.Booking, error) {
	user, err := s.userByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	bookings, err := s.repo.GetUserBookings(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (s Service) userByUsername(
	ctx context.Context,
	username string,
) (models.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s Service) optionalGym(
	ctx context.Context,
	id string,
) (*models.Gym, error) {
	gym, err := s.repo.GetGym(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gym, nil
}

// recentFirst returns up to limit of the last entries of checkins, in
// reverse order.
func recentFirst(checkins []models.Checkin, limit int) []models.Checkin {
	start := len(checkins) - limit
	if start < 0 {
		start = 0
	}
	recent := make([]models.Checkin, 0, len(checkins)-start)
	for i := len(checkins) - 1; i >= start; i-- {
		recent = append(recent, checkins[i])
	}
	return recent
}
