// Package uuid wraps github.com/google/uuid so that IDs can be bound
// from URI and query parameters by gin.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// From wraps a google/uuid value.
func From(id google_uuid.UUID) UUID {
	return UUID{id}
}

// UnmarshalParam implements gin's binding.BindUnmarshaler with the
// parsing rules of https://pkg.go.dev/github.com/google/uuid#Parse.
// An empty parameter is the Nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}

// IsNil reports whether the UUID is the Nil UUID.
func (u UUID) IsNil() bool {
	return u.UUID == google_uuid.Nil
}
