package version

import "testing"

func TestVersionVariables(t *testing.T) {
	if Version == "" {
		t.Fatal("Version must carry a default")
	}

	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	}()

	// Each variable must accept an ldflags-style override, including
	// clearing the optional ones back to empty.
	cases := []struct {
		name string
		set  func(string)
		get  func() string
		want string
	}{
		{"Version", func(s string) { Version = s }, func() string { return Version }, "1.2.3"},
		{"GitCommit", func(s string) { GitCommit = s }, func() string { return GitCommit }, "abc123def456"},
		{"BuildDate", func(s string) { BuildDate = s }, func() string { return BuildDate }, "2024-01-15T10:30:00Z"},
		{"GitCommit cleared", func(s string) { GitCommit = s }, func() string { return GitCommit }, ""},
		{"BuildDate cleared", func(s string) { BuildDate = s }, func() string { return BuildDate }, ""},
	}
	for _, tc := range cases {
		tc.set(tc.want)
		if got := tc.get(); got != tc.want {
			t.Errorf("%s = %q, want %q", tc.name, got, tc.want)
		}
	}
}
