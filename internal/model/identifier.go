package model

import (
	"errors"
	"strings"
)

// Identifier errors.
var (
	// ErrEmptyIdentifier is returned when the identifier is empty after trimming.
	ErrEmptyIdentifier = errors.New("identifier cannot be empty")
	// ErrUnknownIdentifierType is returned when the identifier type is not
	// one of the known values.
	ErrUnknownIdentifierType = errors.New("unknown identifier type: must be \"email\" or \"username\"")
)

// IdentifierType represents the kind of identifier being scanned.
// It selects which catalog and classification path is used.
type IdentifierType string

// Identifier type constants.
const (
	// IdentifierTypeUnknown represents an unrecognized identifier type.
	IdentifierTypeUnknown IdentifierType = ""
	// IdentifierTypeEmail represents an email address identifier.
	IdentifierTypeEmail IdentifierType = "email"
	// IdentifierTypeUsername represents a username identifier.
	IdentifierTypeUsername IdentifierType = "username"
)

// String returns the string representation of the IdentifierType.
func (t IdentifierType) String() string {
	if t == IdentifierTypeUnknown {
		return riskUnknownStr
	}
	return string(t)
}

// IsValid returns true if this is a known identifier type.
func (t IdentifierType) IsValid() bool {
	switch t {
	case IdentifierTypeEmail, IdentifierTypeUsername:
		return true
	default:
		return false
	}
}

// ParseIdentifierType converts a string to an IdentifierType.
func ParseIdentifierType(s string) IdentifierType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "email":
		return IdentifierTypeEmail
	case "username":
		return IdentifierTypeUsername
	default:
		return IdentifierTypeUnknown
	}
}

// NormalizeIdentifier lowercases and trims an identifier.
// All classification and lookup paths operate on the normalized form so
// "User@Gmail.com " and "user@gmail.com" produce identical reports.
func NormalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

// SplitEmail splits a normalized email identifier into local part and domain.
// The second return value is false when the identifier contains no "@"
// separator; callers treat that as "no categories" rather than an error.
func SplitEmail(identifier string) (localPart, domain string, ok bool) {
	localPart, domain, ok = strings.Cut(identifier, "@")
	if !ok {
		return "", "", false
	}
	return localPart, domain, true
}

// GuessIdentifierType infers the identifier type from its shape.
// Anything containing "@" is treated as an email; everything else as a
// username. Used by the CLI when --type is not given; the HTTP API always
// receives an explicit type.
func GuessIdentifierType(identifier string) IdentifierType {
	if strings.Contains(identifier, "@") {
		return IdentifierTypeEmail
	}
	return IdentifierTypeUsername
}
