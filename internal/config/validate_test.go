package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateYAMLSyntax(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content string
		wantErr bool
	}{
		"valid yaml": {
			content: "types:\n  - type: feat\n    heading: Features\n",
		},
		"empty file": {
			content: "",
		},
		"whitespace only": {
			content: "   \n\t\n",
		},
		"tab indentation": {
			content: "types:\n\t- type: feat\n",
			wantErr: true,
		},
		"unclosed bracket": {
			content: "types: [\n",
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			err := ValidateYAMLSyntax(path)
			if tt.wantErr {
				require.Error(t, err)
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
				assert.Equal(t, path, verr.FilePath)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateYAMLSyntax_MissingFileIsNotAnError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateYAMLSyntax(filepath.Join(t.TempDir(), "nope.yml")))
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  ValidationError
		want string
	}{
		"with position": {
			err:  ValidationError{FilePath: "c.yml", Line: 3, Column: 1, Message: "bad"},
			want: "c.yml:3:1: bad",
		},
		"with field and file": {
			err:  ValidationError{FilePath: "c.yml", Field: "types", Message: "empty"},
			want: "c.yml: field 'types': empty",
		},
		"field only": {
			err:  ValidationError{Field: "types[1].type", Message: "duplicate type \"feat\""},
			want: "field 'types[1].type': duplicate type \"feat\"",
		},
		"message only": {
			err:  ValidationError{Message: "broken"},
			want: "broken",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
