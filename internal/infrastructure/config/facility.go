package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/crisiscenter/tracker/internal/core/domain"
)

// LoadCatalog reads the facility catalog from a YAML file:
//
//	beds: ["MD 1", "MD 2", "FD 1"]
//	genders: [Male, Female]
//
// An empty path selects the built-in catalog. A list left out of the file
// falls back to its built-in default.
func LoadCatalog(path string) (domain.Catalog, error) {
	if path == "" {
		return domain.DefaultCatalog(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("read facility file: %w", err)
	}

	var cat domain.Catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return domain.Catalog{}, fmt.Errorf("parse facility file %s: %w", path, err)
	}
	if len(cat.Beds) == 0 {
		cat.Beds = domain.DefaultBeds()
	}
	if len(cat.Genders) == 0 {
		cat.Genders = domain.DefaultGenders()
	}
	if err := validateCatalog(cat); err != nil {
		return domain.Catalog{}, fmt.Errorf("facility file %s: %w", path, err)
	}
	return cat, nil
}

func validateCatalog(cat domain.Catalog) error {
	seen := make(map[string]bool, len(cat.Beds))
	for _, b := range cat.Beds {
		b = strings.TrimSpace(b)
		switch {
		case b == "":
			return errors.New("bed names must not be empty")
		case strings.EqualFold(b, "None"):
			return errors.New(`"None" is reserved for an unassigned bed`)
		case seen[b]:
			return fmt.Errorf("bed %q listed twice", b)
		}
		seen[b] = true
	}
	for _, g := range cat.Genders {
		if strings.TrimSpace(g) == "" {
			return errors.New("gender names must not be empty")
		}
	}
	return nil
}
