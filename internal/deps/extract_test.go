package deps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstNumericToken(t *testing.T) {
	assert.Equal(t, "2.43.0", FirstNumericToken("git version 2.43.0"))
	assert.Equal(t, "1.8.1", FirstNumericToken("1.8.1\n"))
	assert.Equal(t, "1.11.1", FirstNumericToken("ninja 1.11.1, built today"))
	assert.Equal(t, "weird output", FirstNumericToken("  weird output "))
	assert.Equal(t, "", FirstNumericToken(""))
}

func TestLastToken(t *testing.T) {
	assert.Equal(t, "1.4.2", LastToken("flatpak-builder 1.4.2"))
	assert.Equal(t, "", LastToken("   "))
}

func TestFirstLineLastToken(t *testing.T) {
	out := "gcc (Ubuntu 13.2.0-4ubuntu3) 13.2.0\nCopyright (C) 2023 Free Software Foundation, Inc.\n"
	assert.Equal(t, "13.2.0", FirstLineLastToken(out))
	assert.Equal(t, "", FirstLineLastToken("\n\n"))
}

func TestGoVersion(t *testing.T) {
	assert.Equal(t, "1.24.1", GoVersion("go version go1.24.1 linux/amd64"))
	assert.Equal(t, "", GoVersion("go version devel"))
}

func TestTrimV(t *testing.T) {
	assert.Equal(t, "2.7.2", TrimV(LastToken)("fyne cli version: v2.7.2"))
	assert.Equal(t, "1.5", TrimV(LastToken)("fyne-cross 1.5"))
}
