// Package dataset loads country records for the dashboard from a JSON or
// YAML file, or from the dataset embedded in the binary.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/countrydash/internal/country"
	dasherrors "github.com/alexisbeaulieu97/countrydash/pkg/errors"
)

// EmbeddedSource names the built-in dataset in errors and logs.
const EmbeddedSource = "embedded:countries.json"

//go:embed data/countries.json
var embedded []byte

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// document is the wrapped form of a dataset file.
type document struct {
	Countries []country.Country `json:"countries" yaml:"countries"`
}

// Default returns the embedded dataset.
func Default() ([]country.Country, error) {
	return decodeJSON(EmbeddedSource, embedded)
}

// Load reads a dataset file. The format is chosen by extension: .json, or
// .yaml/.yml. Files may hold a bare list or a document with a countries key.
func Load(path string) ([]country.Country, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dasherrors.NewLoadError(path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return decodeJSON(path, data)
	case ".yaml", ".yml":
		return decodeYAML(path, data)
	default:
		return nil, dasherrors.NewLoadError(path, fmt.Errorf("unsupported dataset extension %q", filepath.Ext(path)))
	}
}

// LoadOrDefault loads path, or the embedded dataset when path is empty.
// The returned source names where the records came from.
func LoadOrDefault(path string) ([]country.Country, string, error) {
	if strings.TrimSpace(path) == "" {
		countries, err := Default()
		return countries, EmbeddedSource, err
	}
	countries, err := Load(path)
	return countries, path, err
}

func decodeJSON(source string, data []byte) ([]country.Country, error) {
	trimmed := bytes.TrimSpace(data)

	var countries []country.Country
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &countries); err != nil {
			return nil, dasherrors.NewParseError(source, 0, err)
		}
	} else {
		var doc document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, dasherrors.NewParseError(source, 0, err)
		}
		countries = doc.Countries
	}

	return finish(countries)
}

func decodeYAML(source string, data []byte) ([]country.Country, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, dasherrors.NewParseError(source, extractLine(err), err)
	}

	// Empty documents decode to a node without content.
	if len(root.Content) == 0 {
		return []country.Country{}, nil
	}

	var countries []country.Country
	node := root.Content[0]
	if node.Kind == yaml.SequenceNode {
		if err := node.Decode(&countries); err != nil {
			return nil, dasherrors.NewParseError(source, extractLine(err), err)
		}
	} else {
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, dasherrors.NewParseError(source, extractLine(err), err)
		}
		countries = doc.Countries
	}

	return finish(countries)
}

func finish(countries []country.Country) ([]country.Country, error) {
	if countries == nil {
		countries = []country.Country{}
	}
	if err := Validate(countries); err != nil {
		return nil, err
	}
	return countries, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
