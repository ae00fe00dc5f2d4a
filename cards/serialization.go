package cards

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Table is the on-disk shape of a card set: a named collection plus the
// hero power card it wires to Sim.HeroPower.
type Table struct {
	Name      string     `yaml:"name"`
	HeroPower int32      `yaml:"hero_power"`
	Cards     []CardSpec `yaml:"cards"`
}

// LoadTable parses a YAML card table from bytes.
func LoadTable(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Table{}, errors.Wrap(err, "cards: decoding card table")
	}
	return t, nil
}

// LoadTableFile reads and parses a card table from path.
func LoadTableFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, errors.Wrapf(err, "cards: reading %s", path)
	}
	return LoadTable(data)
}

// Dump serializes a card table back to YAML, round-tripping Table.
func Dump(t Table) ([]byte, error) {
	out, err := yaml.Marshal(t)
	if err != nil {
		return nil, errors.Wrap(err, "cards: encoding card table")
	}
	return out, nil
}
