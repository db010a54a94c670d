package services

import (
	"net/http"
	"sync"
	"time"
)

// DefaultHttpClient returns the shared HTTP client used by tools that
// fetch arbitrary URLs.
var DefaultHttpClient = sync.OnceValue(func() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
	}
})
