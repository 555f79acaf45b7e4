package classification

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultAliases returns the built-in alias table. It is not partitioned by
// transaction type.
func DefaultAliases() map[string]string {
	return map[string]string{
		"food":     "Food",
		"car":      "Transport",
		"movie":    "Entertainment",
		"shop":     "Shopping",
		"medical":  "Healthcare",
		"study":    "Education",
		"work":     "Salary",
		"job":      "Salary",
		"business": "Business",
		"invest":   "Investment",
	}
}

// AliasFile is the YAML layout of a user alias file:
//
//	aliases:
//	  groceries: Food
//	  cab: Transport
type AliasFile struct {
	Aliases map[string]string `yaml:"aliases"`
}

// LoadAliases reads extra aliases from a YAML file.
func LoadAliases(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias file: %w", err)
	}

	var file AliasFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse alias file %s: %w", path, err)
	}

	return file.Aliases, nil
}
