package errors

import (
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
)

// maxSuggestions bounds the "did you mean" list for unknown attribute keys.
const maxSuggestions = 3

// ValidateColumnSize accepts "auto" or an integer from 1 to 12.
func ValidateColumnSize(tok string) error {
	if tok == "auto" {
		return nil
	}
	if err := validateRange(tok, 1, 12); err != nil {
		return New(ErrCodeInvalidAttribute, "column size must be 1-12 or \"auto\", got %q", tok)
	}
	return nil
}

// ValidateOffset accepts an integer from 0 to 11.
func ValidateOffset(tok string) error {
	if err := validateRange(tok, 0, 11); err != nil {
		return New(ErrCodeInvalidAttribute, "offset must be 0-11, got %q", tok)
	}
	return nil
}

// ValidateOrder accepts "default", "first", "last" or an integer from 0 to 12.
func ValidateOrder(tok string) error {
	switch tok {
	case "default", "first", "last":
		return nil
	}
	if err := validateRange(tok, 0, 12); err != nil {
		return New(ErrCodeInvalidAttribute, "order must be default, first, last or 0-12, got %q", tok)
	}
	return nil
}

// ValidateAlignItems accepts the vertical row alignments.
func ValidateAlignItems(tok string) error {
	switch tok {
	case "start", "center", "end":
		return nil
	}
	return New(ErrCodeInvalidAttribute, "align-items must be start, center or end, got %q", tok)
}

// ValidateJustifyContent accepts the horizontal row alignments.
func ValidateJustifyContent(tok string) error {
	switch tok {
	case "start", "center", "end", "between", "around":
		return nil
	}
	return New(ErrCodeInvalidAttribute, "justify-content must be start, center, end, between or around, got %q", tok)
}

// ValidatePadding accepts a non-negative integer scale step.
func ValidatePadding(tok string) error {
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return New(ErrCodeInvalidAttribute, "padding must be a non-negative integer, got %q", tok)
	}
	return nil
}

// ValidateFlag checks that a visibility or switch attribute holds a boolean.
func ValidateFlag(key string, v any) error {
	switch v.(type) {
	case nil, bool:
		return nil
	}
	return New(ErrCodeInvalidAttribute, "%s must be a boolean, got %T", key, v)
}

func validateRange(tok string, lo, hi int) error {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return err
	}
	if n < lo || n > hi {
		return strconv.ErrRange
	}
	return nil
}

// SuggestKeys returns up to three known keys closest to key, best match first.
func SuggestKeys(key string, known []string) []string {
	matches := fuzzy.Find(key, known)
	if len(matches) == 0 {
		// Fuzzy matching needs the query's characters in order; fall back to
		// a case-insensitive prefix match on the first few characters.
		prefix := strings.ToLower(key)
		if len(prefix) > 3 {
			prefix = prefix[:3]
		}
		var out []string
		for _, k := range known {
			if strings.HasPrefix(strings.ToLower(k), prefix) {
				out = append(out, k)
				if len(out) == maxSuggestions {
					break
				}
			}
		}
		return out
	}
	var out []string
	for _, m := range matches {
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// UnknownAttribute builds the error reported for a key no block property reads.
func UnknownAttribute(key string, known []string) *Error {
	if s := SuggestKeys(key, known); len(s) > 0 {
		return New(ErrCodeUnknownAttribute, "unknown attribute %q (did you mean %s?)", key, strings.Join(s, ", "))
	}
	return New(ErrCodeUnknownAttribute, "unknown attribute %q", key)
}
