package config

// GetDefaults returns the default grammar configuration as koanf key/value
// pairs. Every recognized option appears here so 'clgen config show' always
// prints a complete configuration.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"types": []map[string]interface{}{
			{"type": "feat", "heading": "Features"},
			{"type": "fix", "heading": "Bug Fixes"},
			{"type": "perf", "heading": "Performance Improvements"},
			{"type": "refactor", "heading": "Refactors"},
			{"type": "docs", "heading": "Documentation"},
			{"type": "test", "heading": "Tests"},
			{"type": "build", "heading": "Build"},
			{"type": "ci", "heading": "Continuous Integration"},
			{"type": "chore", "heading": "Chores"},
		},
		"case_insensitive":        false,
		"breaking.marker":         "BREAKING CHANGE:",
		"breaking.heading":        "BREAKING CHANGES",
		"others.enabled":          false,
		"others.heading":          "Others",
		"hash.show":               true,
		"hash.length":             7,
		"capitalize_descriptions": true,
	}
}

// GetDefaultConfigTemplate returns a fully commented config template that
// helps users understand all available options. Written by 'clgen config init'.
func GetDefaultConfigTemplate() string {
	return `# clgen grammar configuration
# Commit titles are matched against "type(scope)?!?: description".
# Section order in the changelog follows the order of this list.
types:
  - type: feat
    heading: Features
  - type: fix
    heading: Bug Fixes
  - type: perf
    heading: Performance Improvements
  - type: refactor
    heading: Refactors
  - type: docs
    heading: Documentation
  - type: test
    heading: Tests
  - type: build
    heading: Build
  - type: ci
    heading: Continuous Integration
  - type: chore
    heading: Chores

case_insensitive: false         # Match types ignoring case ("Feat:" == "feat:")

breaking:
  marker: "BREAKING CHANGE:"    # Body lines starting with this flag a breaking change
  heading: BREAKING CHANGES     # Heading of the synthetic first section

others:
  enabled: false                # Collect non-matching commits instead of dropping them
  heading: Others

hash:
  show: true                    # Append the abbreviated commit hash to each entry
  length: 7                     # Abbreviation length (4-40)

capitalize_descriptions: true   # Upper-case the first character of descriptions
`
}
