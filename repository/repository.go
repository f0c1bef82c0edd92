package repository

import (
	"errors"

	"ratfit/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned by point lookups and updates when the id is unknown.
var ErrNotFound = errors.New("not found")

// ErrDuplicateUsername is returned by stores that enforce username
// uniqueness themselves when CreateUser hits an existing username.
var ErrDuplicateUsername = errors.New("duplicate username")

// RevenuePerCheckin is added to a gym's revenue on every check-in.
const RevenuePerCheckin = 10

// SeedGyms returns the fixed set of gyms every store starts with.
func SeedGyms() []models.Gym {
	return []models.Gym{
		{
			ID:              "powerhouse",
			Name:            "PowerHouse Fitness",
			Location:        "Downtown",
			Checkins:        423,
			Revenue:         4230,
			IsRatFitAssured: true,
			QRCode:          "powerhouse-qr",
		},
		{
			ID:              "iron-temple",
			Name:            "Iron Temple",
			Location:        "Uptown",
			Checkins:        298,
			Revenue:         2980,
			IsRatFitAssured: false,
			QRCode:          "iron-temple-qr",
		},
		{
			ID:              "fit-zone",
			Name:            "FitZone Central",
			Location:        "Midtown",
			Checkins:        356,
			Revenue:         3560,
			IsRatFitAssured: true,
			QRCode:          "fit-zone-qr",
		},
		{
			ID:              "muscle-factory",
			Name:            "Muscle Factory",
			Location:        "East Side",
			Checkins:        170,
			Revenue:         1700,
			IsRatFitAssured: false,
			QRCode:          "muscle-factory-qr",
		},
		{
			ID:              "elite-fitness",
			Name:            "Elite Fitness Studio",
			Location:        "West End",
			Checkins:        445,
			Revenue:         4450,
			IsRatFitAssured: true,
			QRCode:          "elite-fitness-qr",
		},
		{
			ID:              "strength-hub",
			Name:            "Strength Hub",
			Location:        "North District",
			Checkins:        201,
			Revenue:         2010,
			IsRatFitAssured: false,
			QRCode:          "strength-hub-qr",
		},
	}
}

func newID() string {
	return uuid.NewString()
}

func copyUser(u models.User) models.User {
	ids := make([]string, len(u.AwayGymIDs))
	copy(ids, u.AwayGymIDs)
	u.AwayGymIDs = ids
	return u
}
