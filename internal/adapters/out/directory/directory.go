// Package directory loads the engineer settings kept outside the ticketing
// store from a YAML file:
//
//	nicknames:
//	  "0201324": Mansyur
//	excluded:
//	  - "0202403"
package directory

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"opsworker/internal/core/domain/model/engineer"
	"opsworker/internal/core/ports"

	"gopkg.in/yaml.v3"
)

var _ ports.EngineerDirectory = (*Directory)(nil)

type file struct {
	Nicknames map[string]string `yaml:"nicknames"`
	Excluded  []string          `yaml:"excluded"`
}

// Directory is an immutable EngineerDirectory.
type Directory struct {
	nicknames map[engineer.EmployeeID]string
	excluded  engineer.IDSet
}

// Empty returns a Directory with no nicknames and no exclusions.
func Empty() *Directory {
	return &Directory{nicknames: map[engineer.EmployeeID]string{}, excluded: engineer.NewIDSet()}
}

// Load reads the directory at path. An empty path yields Empty.
func Load(path string) (*Directory, error) {
	if path == "" {
		return Empty(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read engineer directory: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a directory document. Unknown keys are rejected.
func Parse(data []byte) (*Directory, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse engineer directory: %w", err)
	}

	d := Empty()
	for id, nick := range f.Nicknames {
		d.nicknames[engineer.EmployeeID(id)] = nick
	}
	for _, id := range f.Excluded {
		d.excluded[engineer.EmployeeID(id)] = struct{}{}
	}
	return d, nil
}

// Nickname returns the display-name override for id.
func (d *Directory) Nickname(id engineer.EmployeeID) (string, bool) {
	nick, ok := d.nicknames[id]
	return nick, ok
}

// Excluded returns the employees that are never reported.
func (d *Directory) Excluded() engineer.IDSet {
	return d.excluded
}
