package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  M01 \n"), "Municipality?", &out)
	if err != nil || got != "M01" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	if !strings.Contains(out.String(), "Municipality?\n> ") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	if err == nil {
		t.Fatal("expected EOF error")
	}
}

func TestGetChoice(t *testing.T) {
	choices := []string{"agua", "obra"}

	t.Run("retries until valid, case-insensitive", func(t *testing.T) {
		var out bytes.Buffer
		got, err := GetChoice(rdr("luz\nOBRA\n"), "Category", choices, false, &out)
		require.NoError(t, err)
		require.Equal(t, "obra", got)
		require.Contains(t, out.String(), `"luz" is not one of agua, obra`)
	})

	t.Run("empty allowed", func(t *testing.T) {
		var out bytes.Buffer
		got, err := GetChoice(rdr("\n"), "Category", choices, true, &out)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("eof stops prompting", func(t *testing.T) {
		var out bytes.Buffer
		_, err := GetChoice(rdr("nope\n"), "Category", choices, false, &out)
		require.Error(t, err)
	})
}
