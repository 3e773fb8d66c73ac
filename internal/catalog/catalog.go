// Package catalog loads question catalogs from YAML files and ships an
// embedded default catalog so the binaries run without any setup.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"quizline/internal/domain"
)

//go:embed questions.yaml
var defaultCatalog []byte

type catalogFile struct {
	Questions []questionRecord `yaml:"questions"`
}

type questionRecord struct {
	Prompt      string            `yaml:"prompt"`
	Options     map[string]string `yaml:"options"`
	Answer      string            `yaml:"answer"`
	Explanation string            `yaml:"explanation"`
}

// Load reads a question bank from the YAML file at path. An empty path loads
// the embedded default catalog.
func Load(path string) (*domain.Bank, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	bank, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return bank, nil
}

// Parse builds a validated question bank from YAML catalog data.
func Parse(data []byte) (*domain.Bank, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	questions := make([]domain.Question, 0, len(file.Questions))
	for _, record := range file.Questions {
		questions = append(questions, domain.Question{
			Prompt:      record.Prompt,
			Options:     record.Options,
			CorrectKey:  record.Answer,
			Explanation: record.Explanation,
		})
	}
	return domain.NewBank(questions)
}
