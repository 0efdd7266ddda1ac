package shared

import (
	"math"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Numeric converts a float into pgtype.Numeric for binding money and
// quantity columns. Non-finite values stay valid so a NOT NULL column
// rejects them at the constraint instead of binding NULL.
func Numeric(v float64) pgtype.Numeric {
	switch {
	case math.IsNaN(v):
		return pgtype.Numeric{NaN: true, Valid: true}
	case math.IsInf(v, 1):
		return pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true}
	case math.IsInf(v, -1):
		return pgtype.Numeric{InfinityModifier: pgtype.NegativeInfinity, Valid: true}
	}
	var num pgtype.Numeric
	// Scan of shortest-round-trip decimal text cannot fail for a finite float.
	_ = num.Scan(strconv.FormatFloat(v, 'f', -1, 64))
	return num
}

// Float unwraps a nullable numeric column, zero when NULL.
func Float(num pgtype.Numeric) float64 {
	if !num.Valid {
		return 0
	}
	f, _ := num.Float64Value()
	return f.Float64
}

// Text binds an optional string column.
func Text(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// TextPtr unwraps a nullable text column.
func TextPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// Date binds an optional date column.
func Date(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

// DatePtr unwraps a nullable date column.
func DatePtr(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}
