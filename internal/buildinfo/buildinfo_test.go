package buildinfo

import "testing"

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	cases := []struct {
		version, commit, want string
	}{
		{"dev", "unknown", "dev"},
		{"v1.0.0", "0123456789abcdef", "v1.0.0"},
		{"dev", "0123456789abcdef", "0123456"},
		{"", "abc", "abc"},
	}
	for _, c := range cases {
		Version, Commit = c.version, c.commit
		if got := Short(); got != c.want {
			t.Fatalf("Short() with %q/%q = %q, want %q", c.version, c.commit, got, c.want)
		}
	}
}
