package stories

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	eventerrors "github.com/alexisbeaulieu97/eventui/pkg/errors"
)

// DefaultPath is the label used for the built-in story document.
const DefaultPath = "builtin:stories.yaml"

//go:embed stories.yaml
var builtin []byte

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads, decodes and validates the story document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eventerrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Default returns the built-in story document.
func Default() (*Document, error) {
	return Parse(builtin, DefaultPath)
}

// LoadOrDefault loads path, or the built-in document when path is empty.
func LoadOrDefault(path string) (*Document, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Parse decodes and validates data. Unknown keys are rejected so typos in
// axis names surface as parse errors.
func Parse(data []byte, path string) (*Document, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, eventerrors.NewParseError(path, extractLine(err), err)
	}

	doc.applyDefaults()
	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
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
