package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	RequestWaiting   = "waiting"
	RequestSatisfied = "satisfied"
	RequestRejected  = "rejected"
)

type User struct {
	ID           int
	Username     string
	Password     string
	Role         string
	Tokens       int
	LastBonusDay *time.Time
}

type Track struct {
	ID     int
	Title  string
	Artist string
	Price  int
}

type Download struct {
	ID         int
	UserID     int
	TrackID    int
	Cost       int
	Token      string
	IssuedAt   time.Time
	ValidUntil time.Time
	Consumed   bool
}

func (d Download) Redeemable(now time.Time) bool {
	return !d.Consumed && now.Before(d.ValidUntil)
}

type Request struct {
	ID          int
	Title       string
	Artist      string
	RequesterID int
	Status      string
	RewardPool  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type RequestView struct {
	Request
	Votes int
	Voted bool
}

type Notification struct {
	ID        int
	UserID    int
	Message   string
	Seen      bool
	CreatedAt time.Time
}
