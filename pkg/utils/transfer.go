package utils

import (
	"strconv"
	"time"

	"vidtube.com/pkg/constants"
)

// Transfer converts a decoded jwt claim value into an int64 user id.
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if intValue, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intValue
		}
	}
	return -1
}

// ValidateId is the first validation gate for every path parameter:
// a well-formed resource identifier is a positive decimal int64.
func ValidateId(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func ConvertStringToInt64(v string) (int64, error) {
	return strconv.ParseInt(v, 10, 64)
}

func NowString() string {
	return time.Now().Format(constants.DataFormate)
}
