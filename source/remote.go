package source

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// FetchTimeout bounds a single remote image download. A download that
// exceeds it counts as "no image found" for that page, never as a fatal
// error.
const FetchTimeout = 20 * time.Second

var fetchClient = &http.Client{Timeout: FetchTimeout}

// Fetch downloads the content behind url. It is used as the last-resort
// image lookup when a page declares a remote image URL and no local image
// exists.
func Fetch(url string) ([]byte, error) {
	resp, err := fetchClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
