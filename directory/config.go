package directory

import (
	"time"

	"github.com/go-kit/log"
)

type Config struct {
	// RefreshInterval is the period between two node list requests.
	RefreshInterval time.Duration

	// RequestTimeout bounds a single node list request.
	RequestTimeout time.Duration

	Logger log.Logger
}

func DefaultConfig() Config {
	return Config{
		RefreshInterval: 10 * time.Second,
		RequestTimeout:  5 * time.Second,
		Logger:          log.NewNopLogger(),
	}
}
