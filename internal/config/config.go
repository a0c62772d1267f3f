package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigNames are the config filenames probed in the repository
// root, in priority order, when no explicit path is given.
var DefaultConfigNames = []string{".clgen.yml", ".clgen.yaml", ".clgen.json"}

// envKeys maps CLGEN_* environment variables to config keys. Only scalar
// options are overridable from the environment; the type list is file-only.
var envKeys = map[string]string{
	"CLGEN_CASE_INSENSITIVE":        "case_insensitive",
	"CLGEN_BREAKING_MARKER":         "breaking.marker",
	"CLGEN_BREAKING_HEADING":        "breaking.heading",
	"CLGEN_OTHERS_ENABLED":          "others.enabled",
	"CLGEN_OTHERS_HEADING":          "others.heading",
	"CLGEN_HASH_SHOW":               "hash.show",
	"CLGEN_HASH_LENGTH":             "hash.length",
	"CLGEN_CAPITALIZE_DESCRIPTIONS": "capitalize_descriptions",
}

// Load loads the grammar configuration for a repository.
// Priority: environment variables > config file > defaults.
//
// With a non-empty configPath the file must exist and parse. With an empty
// configPath the default filenames are probed under repoPath; a missing
// file is not an error and the defaults apply.
func Load(repoPath, configPath string) (*Grammar, error) {
	k := koanf.New(".")

	loadDefaults(k)

	path, explicit := resolveConfigPath(repoPath, configPath)
	if path != "" {
		if err := loadConfigFile(k, path, explicit); err != nil {
			return nil, err
		}
	}

	if err := loadEnvironment(k); err != nil {
		return nil, err
	}

	return finalize(k)
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// resolveConfigPath picks the config file to load. An explicit path is
// used as-is; otherwise the default names are probed under repoPath and
// the first existing file wins.
func resolveConfigPath(repoPath, configPath string) (path string, explicit bool) {
	if configPath != "" {
		return configPath, true
	}
	for _, name := range DefaultConfigNames {
		candidate := filepath.Join(repoPath, name)
		if fileExists(candidate) {
			return candidate, false
		}
	}
	return "", false
}

// loadConfigFile parses a config file into k, choosing the parser by file
// extension. YAML files are syntax-validated first so errors carry
// line/column positions.
func loadConfigFile(k *koanf.Koanf, path string, explicit bool) error {
	if explicit && !fileExists(path) {
		return &ValidationError{FilePath: path, Message: "config file not found"}
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("loading config %s: %w", path, err)
		}
		return nil
	}

	if err := ValidateYAMLSyntax(path); err != nil {
		return err
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	return nil
}

// loadEnvironment applies CLGEN_* overrides.
func loadEnvironment(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("CLGEN_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("loading environment config: %w", err)
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// Unknown variables map to "" and are skipped by the provider.
func envTransform(s string) string {
	return envKeys[s]
}

// finalize unmarshals and validates the merged configuration.
func finalize(k *koanf.Koanf) (*Grammar, error) {
	var g Grammar
	if err := k.Unmarshal("", &g); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := Validate(&g); err != nil {
		return nil, err
	}

	return &g, nil
}

// Marshal renders the effective configuration as YAML, for 'config show'.
func Marshal(g *Grammar) (string, error) {
	k := koanf.New(".")
	if err := k.Load(structsProvider{g}, nil); err != nil {
		return "", err
	}
	out, err := k.Marshal(yaml.Parser())
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}
	return string(out), nil
}

// structsProvider adapts a Grammar to koanf's Provider interface without
// pulling in the struct provider's reflection tags mismatch (it reads
// "koanf" tags the same way Unmarshal writes them).
type structsProvider struct {
	g *Grammar
}

func (p structsProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("structs provider does not support ReadBytes")
}

func (p structsProvider) Read() (map[string]interface{}, error) {
	types := make([]map[string]interface{}, 0, len(p.g.Types))
	for _, ts := range p.g.Types {
		types = append(types, map[string]interface{}{
			"type":    ts.Type,
			"heading": ts.Heading,
		})
	}
	return map[string]interface{}{
		"types":            types,
		"case_insensitive": p.g.CaseInsensitive,
		"breaking": map[string]interface{}{
			"marker":  p.g.Breaking.Marker,
			"heading": p.g.Breaking.Heading,
		},
		"others": map[string]interface{}{
			"enabled": p.g.Others.Enabled,
			"heading": p.g.Others.Heading,
		},
		"hash": map[string]interface{}{
			"show":   p.g.Hash.Show,
			"length": p.g.Hash.Length,
		},
		"capitalize_descriptions": p.g.CapitalizeDescriptions,
	}, nil
}

// fileExists checks whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
