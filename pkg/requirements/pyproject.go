package requirements

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/wheelhouse-py/wheelhouse/pkg/errors"
)

// ParsePyproject extracts exact pins from a pyproject.toml file.
//
// Only the PEP 621 `[project] dependencies` array is read; each entry must
// be an exact pin under the same rules as [Parse]. Poetry-style dependency
// tables are not supported.
func ParsePyproject(path string) ([]Requirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open pyproject file %s", path)
	}

	var doc struct {
		Project struct {
			Dependencies []string `toml:"dependencies"`
		} `toml:"project"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse pyproject file %s", path)
	}

	return Parse(doc.Project.Dependencies)
}
