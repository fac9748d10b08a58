package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/napolitain/solver-craft/internal/models"
)

// LoadSetting loads a crafting setting from a YAML file. Fields missing from
// the file keep their default values. The result is validated.
func LoadSetting(path string) (models.Setting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Setting{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	setting, err := ParseSetting(data)
	if err != nil {
		return models.Setting{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return setting, nil
}

// ParseSetting decodes YAML setting data over the defaults and validates it
func ParseSetting(data []byte) (models.Setting, error) {
	setting := models.DefaultSetting()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document decodes as io.EOF and leaves the defaults untouched
	if err := dec.Decode(&setting); err != nil && !errors.Is(err, io.EOF) {
		return models.Setting{}, err
	}

	if err := models.ValidateSetting(setting); err != nil {
		return models.Setting{}, err
	}
	return setting, nil
}
