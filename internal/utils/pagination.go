package utils

import (
	"strconv"
	"strings"
)

// TotalPages is ceil(total/limit), never less than 1.
func TotalPages(total int64, limit int) int {
	if limit < 1 || total <= 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// ParsePage reads a 1-based page number, falling back to 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ParseLimit reads a page size, falling back to def and capping at max.
func ParseLimit(raw string, def, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		n = def
	}
	if max > 0 && n > max {
		n = max
	}
	return n
}

// ParsePrice reads a numeric bound. Malformed and negative input yields nil.
func ParsePrice(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
