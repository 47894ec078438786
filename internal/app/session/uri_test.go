package session

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathFromURI(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix 路径用例")
	}

	cases := []struct {
		in   string
		want string
	}{
		{"file:///home/me/movies.csv", "/home/me/movies.csv"},
		{"file://localhost/home/me/movies.csv", "/home/me/movies.csv"},
		{"file:///home/me/My%20Movies.csv", "/home/me/My Movies.csv"},
		{"FILE:///tmp/x.csv", "/tmp/x.csv"},
		{"/tmp/plain path.csv", "/tmp/plain path.csv"},
		{"relative/../movies.csv", "movies.csv"},
		{"/tmp/100%.csv", "/tmp/100%.csv"},
	}
	for _, c := range cases {
		got, err := PathFromURI(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, filepath.FromSlash(c.want), got, c.in)
	}
}

func TestPathFromURI_Rejects(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"https://example.test/movies.csv",
		"file://nas/share/movies.csv",
	} {
		_, err := PathFromURI(in)
		assert.Error(t, err, in)
	}
}
