package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultPageSize = 20

// JoinSpec describes how one foreign-key field of a resource resolves to a
// display value from another resource's row set.
type JoinSpec struct {
	// Field is the foreign-key field on the owning resource.
	Field string `yaml:"field"`
	// Resource is the name of the reference resource.
	Resource string `yaml:"resource"`
	// Display is the field of the matched reference row to copy.
	Display string `yaml:"display"`
	// As is the field name the resolved value is stored under.
	As string `yaml:"as"`
	// Fallback is the literal substituted when no reference row matches.
	Fallback string `yaml:"fallback"`
}

// ResourceSpec is the per-resource configuration the generic data layer is
// parametrized with: source file, id field, insert position, validation
// and join rules.
type ResourceSpec struct {
	Name     string     `yaml:"name"`
	Source   string     `yaml:"source"`
	Format   string     `yaml:"format"` // "csv" or "json"
	IDField  string     `yaml:"id_field"`
	IDPrefix string     `yaml:"id_prefix,omitempty"`
	Insert   string     `yaml:"insert,omitempty"` // "prepend" (default) or "append"
	PageSize int        `yaml:"page_size,omitempty"`
	Required []string   `yaml:"required,omitempty"`
	Columns  []string   `yaml:"columns,omitempty"`
	Joins    []JoinSpec `yaml:"joins,omitempty"`
}

// Catalog is the full set of resource specs, loaded from a YAML file that
// ships next to the data directory.
type Catalog struct {
	Resources []ResourceSpec `yaml:"resources"`
}

// LoadCatalog reads and validates a resource catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading resource catalog: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(b, &catalog); err != nil {
		return nil, fmt.Errorf("error parsing resource catalog: %w", err)
	}

	seen := make(map[string]bool, len(catalog.Resources))
	for i := range catalog.Resources {
		spec := &catalog.Resources[i]
		if spec.Name == "" {
			return nil, fmt.Errorf("resource %d has no name", i)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("duplicate resource %q", spec.Name)
		}
		seen[spec.Name] = true
		if spec.Source == "" || spec.IDField == "" {
			return nil, fmt.Errorf("resource %q needs source and id_field", spec.Name)
		}
		switch spec.Format {
		case "csv", "json":
		default:
			return nil, fmt.Errorf("resource %q has unsupported format %q", spec.Name, spec.Format)
		}
		if spec.Insert == "" {
			spec.Insert = "prepend"
		}
		if spec.Insert != "prepend" && spec.Insert != "append" {
			return nil, fmt.Errorf("resource %q has unsupported insert position %q", spec.Name, spec.Insert)
		}
		if spec.PageSize <= 0 {
			spec.PageSize = defaultPageSize
		}
	}

	for _, spec := range catalog.Resources {
		for _, join := range spec.Joins {
			if join.Resource == spec.Name {
				return nil, fmt.Errorf("resource %q joins itself", spec.Name)
			}
			if !seen[join.Resource] {
				return nil, fmt.Errorf("resource %q joins unknown resource %q", spec.Name, join.Resource)
			}
		}
	}

	return &catalog, nil
}

// Spec returns the spec for a named resource.
func (c *Catalog) Spec(name string) (ResourceSpec, bool) {
	for _, spec := range c.Resources {
		if spec.Name == name {
			return spec, true
		}
	}
	return ResourceSpec{}, false
}
