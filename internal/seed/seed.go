// Package seed provides the sample texts loaded into a fresh palindrome store.
package seed

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSamples are inserted at startup when no seed file is configured.
var DefaultSamples = []string{
	"radar",
	"ana",
	"somos",
	"reconocer",
	"anita lava la tina",
	"a man a plan a canal panama",
	"madam",
	"racecar",
}

// File is the YAML layout of a seed file.
type File struct {
	Samples []string `yaml:"samples"`
}

// Parse decodes a YAML seed document. Blank samples are dropped.
func Parse(data []byte) ([]string, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	samples := make([]string, 0, len(f.Samples))
	for _, s := range f.Samples {
		if strings.TrimSpace(s) == "" {
			continue
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// Load reads samples from the YAML file at path.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Resolve returns the samples from path, or a copy of DefaultSamples when path is empty.
func Resolve(path string) ([]string, error) {
	if path == "" {
		return append([]string(nil), DefaultSamples...), nil
	}
	return Load(path)
}
