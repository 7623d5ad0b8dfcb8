package models

import "time"

type User struct {
	ID string
	// Address is the on-ledger identity claims are submitted under,
	// assigned once at registration.
	Address   string
	UserName  string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}
