package core

import "time"

// Account is the public view of an authenticated user.
type Account struct {
	ID       uint
	Username string
}

// AdminAccount is the account seeded on first start.
type AdminAccount struct {
	Username string
	Password string
}

type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

type MessageRecord struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
