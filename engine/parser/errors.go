package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/omniql-engine/altersql/engine/lexer"
)

// ParseError represents an error with position info
type ParseError struct {
	Message  string
	Position int
	Line     int
	Column   int
	Token    string
	Expected []string // Accepted alternatives, sorted
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
	if len(e.Expected) > 0 {
		msg += fmt.Sprintf(" (expected one of: %s)", strings.Join(e.Expected, ", "))
	}
	return msg
}

// NewParseError creates a new parse error at token
func NewParseError(token lexer.Token, message string, expected ...string) *ParseError {
	return &ParseError{
		Message:  message,
		Position: token.Position,
		Line:     token.Line,
		Column:   token.Column,
		Token:    token.Raw,
		Expected: normalizeExpected(expected),
	}
}

func normalizeExpected(expected []string) []string {
	if len(expected) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(expected))
	out := make([]string, 0, len(expected))
	for _, e := range expected {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// SuggestSimilar finds the closest candidate keyword
func SuggestSimilar(unknown string, candidates []string) string {
	unknown = strings.ToUpper(unknown)

	var bestMatch string
	bestDistance := 999
	maxDistance := 2 // Only suggest if within 2 edits

	for _, candidate := range candidates {
		dist := levenshtein(unknown, candidate)
		if dist < bestDistance && dist <= maxDistance {
			bestDistance = dist
			bestMatch = candidate
		}
	}

	return bestMatch
}

// levenshtein calculates edit distance between two strings
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Create matrix
	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	// Fill matrix
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}
