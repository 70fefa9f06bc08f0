package keelnum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// SeverityString parses one of the standard severity names back into a
// Severity. Parsing is case-insensitive. "UNKNOWN" is not a member of the
// domain and does not parse.
func SeverityString(s string) (Severity, error) {
	switch strings.ToUpper(s) {
	case "INFO":
		return Info, nil
	case "WARNING":
		return Warning, nil
	case "ERROR":
		return Error, nil
	case "FATAL":
		return Fatal, nil
	}
	return Info, errors.Errorf("%s does not belong to Severity values", s)
}

// SeverityStrings returns the standard severity names ordered from least
// to most severe.
func SeverityStrings() []string {
	return []string{"INFO", "WARNING", "ERROR", "FATAL"}
}

// MarshalText encodes the severity as its name token. Downstream log
// emitters depend on the exact spelling of the tokens.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity from its name token.
func (s *Severity) UnmarshalText(text []byte) error {
	v, err := SeverityString(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalJSON encodes the severity as its name token, never as an ordinal.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a severity from its name token. Ordinals are
// rejected.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return errors.Wrap(err, "Severity should be a string")
	}
	v, err := SeverityString(name)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Value implements driver.Valuer, storing the name token.
func (s Severity) Value() (driver.Value, error) {
	return s.String(), nil
}

// Scan implements sql.Scanner, accepting the name token as a string or
// byte slice.
func (s *Severity) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case string:
		return s.UnmarshalText([]byte(v))
	case []byte:
		return s.UnmarshalText(v)
	default:
		return errors.Errorf("cannot scan %T into Severity", value)
	}
}
