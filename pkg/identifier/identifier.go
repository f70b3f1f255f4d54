// Package identifier define el tipo canónico de identificador de 128 bits
// de la aplicación y su adaptador de almacenamiento.
//
// En memoria y en las respuestas JSON se usa la forma UUID con guiones
// (36 caracteres). En la base de datos se persiste como CHAR(32): hexadecimal
// en minúsculas, sin separadores, para que el mismo tipo funcione igual en
// motores con columna UUID nativa y en motores que solo ofrecen texto fijo.
package identifier

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UID es un identificador inmutable de 128 bits.
type UID [16]byte

// Nil es el UID cero (inválido como identificador de entidad).
var Nil UID

// FormatError indica que un valor de entrada no es una representación
// válida de UID. Se retorna al llamador sin reintentos.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("identificador con formato inválido: %q", e.Value)
}

// New genera un UID aleatorio (UUID v4).
func New() UID {
	return UID(uuid.New())
}

// Parse acepta la forma canónica con guiones (36 caracteres) o la forma de
// almacenamiento hexadecimal (32 caracteres). Cualquier otra entrada retorna
// *FormatError.
func Parse(s string) (UID, error) {
	switch len(s) {
	case 36, 32:
		u, err := uuid.Parse(s)
		if err != nil {
			return Nil, &FormatError{Value: s}
		}
		return UID(u), nil
	default:
		return Nil, &FormatError{Value: s}
	}
}

// MustParse es Parse con panic; solo para constantes de test y seeds.
func MustParse(s string) UID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Hex devuelve la forma de almacenamiento: 32 caracteres hexadecimales en
// minúsculas, sin separadores.
func (id UID) Hex() string {
	return hex.EncodeToString(id[:])
}

// String devuelve la forma canónica con guiones.
func (id UID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reporta si el UID es el valor cero.
func (id UID) IsZero() bool {
	return id == Nil
}

// Value implementa driver.Valuer: siempre escribe la forma CHAR(32).
func (id UID) Value() (driver.Value, error) {
	return id.Hex(), nil
}

// Scan implementa sql.Scanner. Acepta lo que devuelva el backend:
// texto de 32 o 36 caracteres, bytes crudos de 16 (columna UUID nativa)
// o NULL (queda en Nil).
func (id *UID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = Nil
		return nil
	case string:
		parsed, err := Parse(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	case []byte:
		if len(v) == 16 {
			copy(id[:], v)
			return nil
		}
		parsed, err := Parse(strings.TrimSpace(string(v)))
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	default:
		return &FormatError{Value: fmt.Sprintf("%v", src)}
	}
}

// MarshalText serializa en la forma canónica con guiones (JSON, query params).
func (id UID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText acepta las mismas formas que Parse.
func (id *UID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
