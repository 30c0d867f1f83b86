package source

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSpaceCount(t *testing.T) {
	assert.Equal(t, 0, SpaceCount("no leading whitespace string"))
	assert.Equal(t, 4, SpaceCount("    four leading whitespace string"))
	assert.Equal(t, 2, SpaceCount("\t\tx"))
	assert.Equal(t, 3, SpaceCount("   "))
}

func TestIndentLines(t *testing.T) {
	tests := []struct {
		name  string
		count int
		text  string
		want  string
	}{
		{"zero", 0, "a\n  b\nc", "a\n  b\nc"},
		{"one", 1, "a\n  b\nc", "a\n   b\n c"},
		{"four", 4, "a\n  b\nc", "a\n      b\n    c"},
		{"trailing_newline", 2, "x\ny\n", "x\n  y\n"},
		{"single_line", 3, "x", "x"},
		{"empty", 3, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IndentLines(tt.count, tt.text))
		})
	}
}

func TestInsert(t *testing.T) {
	host := "a\n  @inP1@\n  c\n@inP2@\ne"

	tests := []struct {
		name   string
		host   string
		marker string
		text   string
		want   string
	}{
		{
			name:   "indented_marker",
			host:   host,
			marker: "@inP1@",
			text:   "b\nb\n  b",
			want:   "a\n  b\n  b\n    b\n  c\n@inP2@\ne",
		},
		{
			name:   "unindented_marker",
			host:   host,
			marker: "@inP2@",
			text:   "d\n  d\nd",
			want:   "a\n  @inP1@\n  c\nd\n  d\nd\ne",
		},
		{
			name:   "marker_absent",
			host:   host,
			marker: "@missing@",
			text:   "zzz",
			want:   host,
		},
		{
			name:   "every_occurrence_uses_last_indent",
			host:   "  @m@\n      @m@\n",
			marker: "@m@",
			text:   "x\ny",
			want:   "  x\n      y\n      x\n      y\n",
		},
		{
			name:   "empty_text_removes_marker",
			host:   "a\n  @m@\nb",
			marker: "@m@",
			text:   "",
			want:   "a\n  \nb",
		},
		{
			name:   "four_space_marker",
			host:   "int main() {\n    @body@\n}\n",
			marker: "@body@",
			text:   "int a = 0;\nint b = 0;\n",
			want:   "int main() {\n    int a = 0;\n    int b = 0;\n\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Insert(tt.host, tt.marker, tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Insert() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInsertChained(t *testing.T) {
	host := "a\n  @inP1@\n  c\n@inP2@\ne"
	first := Insert(host, "@inP1@", "b\nb\n  b")
	second := Insert(first, "@inP2@", "  d\n  d\nd")

	assert.Equal(t, "a\n  @inP1@\n  c\n@inP2@\ne", host)
	assert.Equal(t, "a\n  b\n  b\n    b\n  c\n  d\n  d\nd\ne", second)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("x @m@ y", "@m@"))
	assert.False(t, Contains("x y", "@m@"))
	assert.False(t, Contains("x y", ""))
}
