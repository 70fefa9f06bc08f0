package keelnum

import (
	"github.com/pkg/errors"
	yaml "go.yaml.in/yaml/v4"
)

// MarshalYAML encodes the severity as its name token so that config files
// carry "ERROR" rather than 2.
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML decodes a severity from its name token.
func (s *Severity) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return errors.Wrap(err, "Severity should be a YAML string")
	}
	v, err := SeverityString(name)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
