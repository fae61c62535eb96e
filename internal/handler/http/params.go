package http

import (
	"net/http"
	"strconv"
)

// periodQuery reads the ?month= and ?year= query parameters. The ok result
// is false when either is missing or not a number; range checks belong to
// the service layer.
func periodQuery(r *http.Request) (month, year int, ok bool) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, false
	}
	year, err = strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, false
	}
	return month, year, true
}
