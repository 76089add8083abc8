package scalars

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/99designs/gqlgen/graphql"

	"github.com/hotelreservation/backend/internal/domain/entities"
)

// MarshalDate writes a calendar date as "YYYY-MM-DD"
func MarshalDate(t time.Time) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		io.WriteString(w, strconv.Quote(t.Format(entities.DateLayout)))
	})
}

// UnmarshalDate accepts a calendar date "YYYY-MM-DD" only. Timestamps are
// rejected: reservations are stored as dates, so a time of day would be
// dropped after the stay length had already been judged on it.
func UnmarshalDate(v interface{}) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("unable to parse Date from %T", v)
	}
	t, err := time.Parse(entities.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid Date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}
