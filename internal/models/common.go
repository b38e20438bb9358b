// internal/models/common.go
package models

// Enums
type SellStatus string

const (
	SellStatusListed   SellStatus = "listed"
	SellStatusSold     SellStatus = "sold"
	SellStatusCanceled SellStatus = "canceled"
)

func (s SellStatus) Valid() bool {
	switch s {
	case SellStatusListed, SellStatusSold, SellStatusCanceled:
		return true
	}
	return false
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)
