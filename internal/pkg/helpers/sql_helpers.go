package helpers

import "database/sql"

// GetNullString converts a string pointer to sql.NullString.
// If the pointer is nil, returns an empty NullString.
func GetNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// GetNullInt64 converts an int64 pointer to sql.NullInt64.
// If the pointer is nil, returns an empty NullInt64.
func GetNullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

// StringPtr returns a pointer to the string when the NullString is valid, nil otherwise.
func StringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// Int16Ptr returns a pointer to the value when the NullInt16 is valid, nil otherwise.
func Int16Ptr(i sql.NullInt16) *int16 {
	if !i.Valid {
		return nil
	}
	v := i.Int16
	return &v
}
