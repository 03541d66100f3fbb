package manager

import (
	"net/http"
	"time"

	"github.com/go-kit/log"
	"golang.org/x/time/rate"
)

type Config struct {
	// BaseURL is the root of the manager API, e.g. http://127.0.0.1:8000/api.
	BaseURL string

	// Timeout bounds every request, including reading the response body.
	Timeout time.Duration

	// RateLimit is the maximum number of requests per second sent to the
	// manager. Zero disables limiting.
	RateLimit rate.Limit
	Burst     int

	// HTTPClient overrides the client used to send requests.
	HTTPClient *http.Client

	Logger log.Logger
}

func DefaultConfig() Config {
	return Config{
		Timeout:   10 * time.Second,
		RateLimit: 20,
		Burst:     10,
		Logger:    log.NewNopLogger(),
	}
}
