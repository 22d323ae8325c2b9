package schema

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// Marshal serializes a tier tree to YAML under its dialect root key.
// Identical input yields byte-identical output: map keys serialize
// sorted and every truncation policy is order-stable.
func Marshal(s Schema) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	err := enc.Encode(map[string]Schema{s.Dialect(): s})
	if err != nil {
		return nil, err
	}
	err = enc.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
