package deps

import "strings"

// VersionParser extracts a version string from a tool's --version output.
type VersionParser func(output string) string

// FirstNumericToken returns the first whitespace-separated token that starts
// with a digit, without trailing commas. Without such a token the whole
// output is returned.
func FirstNumericToken(output string) string {
	output = strings.TrimSpace(output)
	for _, tok := range strings.Fields(output) {
		if tok[0] >= '0' && tok[0] <= '9' {
			return strings.TrimRight(tok, ",")
		}
	}
	return output
}

// LastToken returns the last whitespace-separated token of output.
func LastToken(output string) string {
	fields := strings.Fields(output)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// FirstLineLastToken returns the last token of the first non-empty line.
// gcc and clang put the version there, followed by a copyright notice.
func FirstLineLastToken(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			return LastToken(line)
		}
	}
	return ""
}

// GoVersion extracts 1.24.1 from "go version go1.24.1 linux/amd64".
func GoVersion(output string) string {
	for _, tok := range strings.Fields(output) {
		if rest, ok := strings.CutPrefix(tok, "go"); ok && rest != "" && rest[0] >= '0' && rest[0] <= '9' {
			return rest
		}
	}
	return ""
}

// TrimV wraps a parser and strips a leading "v" from its result.
func TrimV(p VersionParser) VersionParser {
	return func(output string) string {
		return strings.TrimPrefix(p(output), "v")
	}
}
