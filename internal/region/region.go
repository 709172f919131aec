package region

import (
	"regexp"
	"strings"
)

var trailingDigits = regexp.MustCompile(`([A-Za-z])(\d+)$`)

// Normalize converts a cloud console region id into the form the Climatiq
// compute API expects: "us-west-2" -> "us_west_2", "westus2" -> "westus_2".
// Case and whitespace are left untouched.
func Normalize(region string) string {
	region = strings.ReplaceAll(region, "-", "_")
	return trailingDigits.ReplaceAllString(region, "${1}_${2}")
}
