package utils

import "database/sql"

// NullStringToStringPtr converts a sql.NullString to a *string.
func NullStringToStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		return &ns.String
	}
	return nil
}

// PointerToString renders a *string for logging, "<nil>" when unset.
func PointerToString(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}
