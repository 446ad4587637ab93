package pages

import (
	"net/http"
	"strconv"
)

// statusTitle renders e.g. "404 Not Found".
func statusTitle(status int) string {
	return strconv.Itoa(status) + " " + http.StatusText(status)
}
