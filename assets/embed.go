package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed labels.txt
var FS embed.FS

// ReadLabels reads one label per line, skipping blanks and # comments.
func ReadLabels(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// DefaultLabels returns the embedded label pool.
func DefaultLabels() ([]string, error) {
	f, err := FS.Open("labels.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLabels(f)
}
