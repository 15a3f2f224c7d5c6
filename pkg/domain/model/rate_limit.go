package model

// RateLimit is the core REST quota of the credential. Reset is a unix timestamp in seconds.
type RateLimit struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"`
	Used      int   `json:"used"`
}
