package segment

import (
	"reflect"
	"testing"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "lf",
			input: "a=1\nb=2\n",
			want:  []string{"a=1\n", "b=2\n"},
		},
		{
			name:  "crlf",
			input: "a=1\r\nb=2\r\n",
			want:  []string{"a=1\n", "b=2\n"},
		},
		{
			name:  "cr only",
			input: "a=1\rb=2\r",
			want:  []string{"a=1\n", "b=2\n"},
		},
		{
			name:  "mixed styles",
			input: "a=1\r\nb=2\nc=3\rd=4",
			want:  []string{"a=1\n", "b=2\n", "c=3\n", "d=4\n"},
		},
		{
			name:  "missing final terminator",
			input: "a=1\nb=2",
			want:  []string{"a=1\n", "b=2\n"},
		},
		{
			name:  "blank lines kept",
			input: "a=1\n\nb=2\n",
			want:  []string{"a=1\n", "\n", "b=2\n"},
		},
		{
			name:  "crlf blank line",
			input: "\r\n\r\n",
			want:  []string{"\n", "\n"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "hex run resolved in content",
			input: "k=\\x20ac\n",
			want:  []string{"k=€\n"},
		},
		{
			name:  "surrogate pair resolved",
			input: "k=\\xd83d\\xde00\n",
			want:  []string{"k=\U0001F600\n"},
		},
		{
			name:  "embedded newline escape does not split",
			input: "k=a\\x000ab\n",
			want:  []string{"k=a\nb\n"},
		},
		{
			name:  "named escapes preserved",
			input: "k=\\\"v\\\"\n",
			want:  []string{"k=\\\"v\\\"\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
