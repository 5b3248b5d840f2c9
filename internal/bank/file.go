package bank

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/tuiprep/internal/model"
)

// File is the YAML layout of a question bank override.
type File struct {
	Categories []CategoryFile `yaml:"categories"`
}

// CategoryFile lists the questions of one category.
type CategoryFile struct {
	Name      string   `yaml:"name"`
	Questions []string `yaml:"questions"`
}

// Load reads a YAML bank. Categories missing from the file keep their built-in questions.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bank %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML bank.
func Parse(data []byte) (*Bank, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode bank: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("bank has no categories")
	}

	merged := make(map[model.Category][]string, len(builtin))
	for cat, qs := range builtin {
		merged[cat] = qs
	}
	seen := map[model.Category]struct{}{}
	for i, entry := range file.Categories {
		cat, err := ParseCategory(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("category %d: %w", i+1, err)
		}
		if _, dup := seen[cat]; dup {
			return nil, fmt.Errorf("category %s listed twice", cat)
		}
		seen[cat] = struct{}{}

		questions := make([]string, 0, len(entry.Questions))
		for _, q := range entry.Questions {
			q = strings.TrimSpace(q)
			if q == "" {
				return nil, fmt.Errorf("category %s has an empty question", cat)
			}
			questions = append(questions, q)
		}
		if len(questions) < MinQuestions {
			return nil, fmt.Errorf("category %s needs at least %d questions, got %d", cat, MinQuestions, len(questions))
		}
		merged[cat] = questions
	}
	return newBank(merged), nil
}
