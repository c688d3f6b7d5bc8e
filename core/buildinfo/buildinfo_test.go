package buildinfo

import "testing"

func TestShort(t *testing.T) {
	prevVersion, prevCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = prevVersion, prevCommit })

	Version, Commit = "1.2.3", "local"
	if got := Short(); got != "1.2.3" {
		t.Fatalf("Short() = %q", got)
	}
	Commit = "0123456789abcdef"
	if got := Short(); got != "1.2.3 (0123456)" {
		t.Fatalf("Short() = %q", got)
	}
}
