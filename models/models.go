package models

import "time"

type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	HomeGymID  string    `json:"homeGymId"`
	AwayGymIDs []string  `json:"awayGymIds"`
	Streak     int       `json:"streak"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Gym struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Location        string `json:"location"`
	Checkins        int    `json:"checkins"`
	Revenue         int    `json:"revenue"`
	IsRatFitAssured bool   `json:"isRatFitAssured"`
	QRCode          string `json:"qrCode"`
}

type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	GymID     string    `json:"gymId"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

type Checkin struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	GymID     string    `json:"gymId"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser is the caller-supplied part of a User; id, streak and createdAt
// are assigned by the repository.
type NewUser struct {
	Username   string
	HomeGymID  string
	AwayGymIDs []string
}

type NewBooking struct {
	UserID string
	GymID  string
	Date   string
}

type NewCheckin struct {
	UserID string
	GymID  string
}
