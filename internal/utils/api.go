package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// ParsePageParam retrieves the 1-based page number from the query
// parameters. A missing value defaults to 0, meaning "keep the resource's
// current page"; an invalid or non-positive value updates the fieldErrors
// map.
func ParsePageParam(params url.Values, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get("page")
	if val == "" {
		return 0, fieldErrors
	}

	page, err := strconv.Atoi(val)
	if err != nil || page < 1 {
		fieldErrors["page"] = append(fieldErrors["page"], "Invalid field value for field \"page\".")
		return 0, fieldErrors
	}
	return page, fieldErrors
}

// ParseBoolParam retrieves a boolean query parameter, treating a missing
// value as false.
func ParseBoolParam(params url.Values, key string) bool {
	val := params.Get(key)
	if val == "" {
		return false
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false
	}
	return b
}

// FormatMoney renders an amount the way the tables display it, rounded to
// two decimal places.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
