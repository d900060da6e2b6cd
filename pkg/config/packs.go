package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cmdgen/cmdgen/pkg/templates"
)

// templatePack is the on-disk format for custom template definitions: a YAML
// file holding one or more templates.
type templatePack struct {
	Templates []*templates.Template `yaml:"templates"`
}

// LoadTemplatePacks reads custom template definitions from *.yaml files in
// dir. A missing directory yields no templates. Files that do not parse, and
// templates missing an id or body, are skipped and reported as warnings; pack
// problems never abort the run. File order (and with it template precedence)
// follows the sorted directory listing, so results are deterministic.
func LoadTemplatePacks(dir string) ([]*templates.Template, []string) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, []string{fmt.Sprintf("reading template packs: %v", err)}
	}

	var custom []*templates.Template
	var warnings []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		contents, err := os.ReadFile(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", entry.Name(), err))
			continue
		}

		var pack templatePack
		if err := yaml.Unmarshal(contents, &pack); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", entry.Name(), err))
			continue
		}

		for _, t := range pack.Templates {
			if strings.TrimSpace(t.ID) == "" || strings.TrimSpace(t.Body) == "" {
				warnings = append(warnings, fmt.Sprintf("%s: template missing id or body", entry.Name()))
				continue
			}
			custom = append(custom, t)
		}
	}

	return custom, warnings
}
