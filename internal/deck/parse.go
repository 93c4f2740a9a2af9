package deck

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Load reads and parses the deck file at path. It does not validate.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNoDeck)
		}
		return nil, fmt.Errorf("reading deck: %w", err)
	}
	return Parse(data, filepath.Base(path))
}

// Parse decodes deck TOML. Unknown keys are rejected so typos in field names
// surface instead of being silently ignored.
func Parse(data []byte, source string) (*Deck, error) {
	var d Deck
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%s: %w: %s", source, ErrParse, strict.String())
		}
		return nil, fmt.Errorf("%s: %w: %v", source, ErrParse, err)
	}
	d.SourceFile = source
	return &d, nil
}
