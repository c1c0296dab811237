package utils

import "strconv"

func StrPtr(s string) *string {
	return &s
}

func ToInt64(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
