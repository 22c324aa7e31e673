package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// CheckLink probes a URL with a HEAD request and reports whether it answered
// with a non-error status. Some hosts reject HEAD, so a GET is retried once.
func CheckLink(url string) (bool, int) {
	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().Head(url)
	if err == nil && resp.StatusCode() < 400 {
		return true, resp.StatusCode()
	}

	resp, err = client.R().Get(url)
	if err != nil {
		return false, 0
	}
	return resp.StatusCode() < 400, resp.StatusCode()
}
