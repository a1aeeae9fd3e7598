package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed banner.txt low.txt high.txt correct.txt
var FS embed.FS

// readLines returns the non-empty, non-comment lines of an embedded file.
// Phrases keep their original case and inner spacing.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

func LowList() ([]string, error) {
	return readLines("low.txt")
}

func HighList() ([]string, error) {
	return readLines("high.txt")
}

func CorrectList() ([]string, error) {
	return readLines("correct.txt")
}

// Banner returns the ASCII welcome art verbatim, without the final newline.
func Banner() (string, error) {
	b, err := FS.ReadFile("banner.txt")
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
