package codepad

import "testing"

func TestVersion_IsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestVersionTag_PrefixesV(t *testing.T) {
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("version tag: got %q, want %q", got, want)
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: "1.2.3-rc.1", want: true},
		{version: "v1.2.3", want: false},
		{version: "1.2", want: false},
	}

	for _, tc := range cases {
		if got := IsSemver(tc.version); got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}

func TestResolveVersion(t *testing.T) {
	cases := map[string]string{
		"":       Version(),
		"dev":    Version(),
		"v1.4.0": "1.4.0",
		"2.0.0":  "2.0.0",
	}
	for in, want := range cases {
		if got := ResolveVersion(in); got != want {
			t.Fatalf("ResolveVersion(%q): got %q, want %q", in, got, want)
		}
	}
}
