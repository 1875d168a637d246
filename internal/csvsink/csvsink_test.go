package csvsink

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestOpenWritesHeaderOnceAndAppends(t *testing.T) {
	c := qt.New(t)

	path := filepath.Join(t.TempDir(), "results.csv")

	s1, err := Open(path, []string{"a", "b"})
	c.Assert(err, qt.IsNil)
	c.Assert(s1.WriteRow([]string{"1", "2"}), qt.IsNil)
	c.Assert(s1.Close(), qt.IsNil)

	s2, err := Open(path, []string{"a", "b"})
	c.Assert(err, qt.IsNil)
	c.Assert(s2.WriteRow([]string{"3", "4"}), qt.IsNil)
	c.Assert(s2.Close(), qt.IsNil)

	content, err := os.ReadFile(path)
	c.Assert(err, qt.IsNil)
	c.Assert(string(content), qt.Equals, "a,b\n1,2\n3,4\n")
}
