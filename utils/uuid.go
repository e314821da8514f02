package utils

import (
	"github.com/google/uuid"
)

// GenerateID mints the random identifiers used for auctions and bids.
func GenerateID() string {
	return uuid.New().String()
}
