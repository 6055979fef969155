package aiusage

import "errors"

// ErrInsufficientTokens is returned when a client has used its generations for the day.
var ErrInsufficientTokens = errors.New("generation quota exceeded")

// DefaultTokens is the number of generations granted per client per day.
const DefaultTokens = 50
