package events

import (
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// ErrNoDocument is returned when decoding a snapshot that carries no document.
var ErrNoDocument = errors.New("event carries no document")

// Validator checks a decoded record.
type Validator interface {
	Validate(i interface{}) error
}

// Decode converts the snapshot's typed fields into dst, a pointer to a record
// struct whose json tags name the Firestore fields, then validates it.
// Field names match case-sensitively, as Firestore's do. Unknown fields are
// ignored; a field of the wrong type is an error.
func Decode(v FirestoreValue, dst interface{}, validator Validator) error {
	if !v.Exists() {
		return ErrNoDocument
	}

	plain, err := fieldsToMap(v.Fields)
	if err != nil {
		return fmt.Errorf("decode %s: %w", v.Name, err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:   "json",
		Result:    dst,
		MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
	})
	if err != nil {
		return fmt.Errorf("decode %s: %w", v.Name, err)
	}
	if err := dec.Decode(plain); err != nil {
		return fmt.Errorf("decode %s: %w", v.Name, err)
	}

	if validator != nil {
		if err := validator.Validate(dst); err != nil {
			return fmt.Errorf("validate %s: %w", v.Name, err)
		}
	}
	return nil
}
