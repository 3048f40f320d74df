package cleanup

import "regexp"

var blankRunPattern = regexp.MustCompile(`\n{3,}`)

// SqueezeBlankLines collapses every run of two or more blank lines into one
func SqueezeBlankLines(src string) (string, bool) {
	out := blankRunPattern.ReplaceAllString(src, "\n\n")
	return out, out != src
}
