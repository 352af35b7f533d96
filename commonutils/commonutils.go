package commonutils

import (
	"strconv"
	"strings"
)

// IsFlagNonNegativeNumber accepts plain decimal digits only, so "+1" and "-0" are rejected
func IsFlagNonNegativeNumber(flag string) bool {
	if strings.ContainsAny(flag, "+-") {
		return false
	}
	num, err := strconv.Atoi(flag)
	if err != nil {
		return false
	}
	return num >= 0
}
