package revrange

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		expr  string
		title string
		tags  []string
		want  string
	}{
		"shorthand with resolvable tag": {
			expr:  "~..HEAD",
			title: "1.1.7",
			tags:  []string{"1.0.0", "1.1.5", "1.2.0"},
			want:  "1.1.5..HEAD",
		},
		"shorthand without tags drops left endpoint": {
			expr: "~..HEAD",
			tags: nil,
			want: "HEAD",
		},
		"shorthand with only invalid tags drops left endpoint": {
			expr: "~..HEAD",
			tags: []string{"nightly", "rc"},
			want: "HEAD",
		},
		"shorthand without title resolves highest tag": {
			expr: "~..HEAD",
			tags: []string{"1.0.0", "v2.0.0"},
			want: "v2.0.0..HEAD",
		},
		"unparseable title falls back to full history": {
			expr:  "~..HEAD",
			title: "next-release",
			tags:  []string{"1.0.0"},
			want:  "HEAD",
		},
		"explicit range passes through": {
			expr:  "aaaabbb^..ccccddd",
			title: "1.0.0",
			tags:  []string{"0.9.0"},
			want:  "aaaabbb^..ccccddd",
		},
		"single revision passes through": {
			expr: "HEAD",
			want: "HEAD",
		},
		"shorthand with non-HEAD right endpoint": {
			expr:  "~..release-branch",
			title: "2.0.0",
			tags:  []string{"1.9.0"},
			want:  "1.9.0..release-branch",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := Expand(tt.expr, tt.title, tt.tags)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_SyntaxErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		expr string
	}{
		"marker alone":             {expr: "~"},
		"marker without separator": {expr: "~HEAD"},
		"missing right endpoint":   {expr: "~.."},
		"single dot":               {expr: "~.HEAD"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Expand(tt.expr, "", nil)
			require.Error(t, err)

			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
			assert.Equal(t, tt.expr, syntaxErr.Expr)
			assert.Contains(t, syntaxErr.Error(), tt.expr)
		})
	}
}
