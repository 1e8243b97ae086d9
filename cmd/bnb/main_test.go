package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"github.com/bnb-go/bnb"
)

type output struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func runCLI(t *testing.T, stdin string, args ...string) (*output, error) {
	t.Helper()
	out := &output{}
	cli := CLI{Globals: Globals{stdin: strings.NewReader(stdin), stdout: &out.stdout, stderr: &out.stderr}}
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)
	return out, kctx.Run(&cli.Globals)
}

func TestXMLFromStdinAsJSON(t *testing.T) {
	out, err := runCLI(t, `<a key="val">foo<b /></a>`, "--json", "xml")
	require.NoError(t, err)
	require.JSONEq(t, `{
		"name": "a",
		"attributes": {"key": "val"},
		"children": ["foo", {"name": "b", "attributes": {}, "children": []}]
	}`, out.stdout.String())
}

func TestReadInputFallsBackToStdin(t *testing.T) {
	for _, file := range []string{"", "-"} {
		data, err := readInput(strings.NewReader("##a=b\n"), file)
		require.NoError(t, err)
		require.Equal(t, "##a=b\n", string(data))
	}

	_, err := readInput(strings.NewReader(""), filepath.Join(t.TempDir(), "missing.vcf"))
	require.Error(t, err)
}

func TestVCFFromStdin(t *testing.T) {
	out, err := runCLI(t, "##fileformat=VCFv4.2\n", "--json", "vcf")
	require.NoError(t, err)
	require.JSONEq(t, `[{"key": "fileformat", "value": "VCFv4.2"}]`, out.stdout.String())
}

func TestVCFFromFileAsJSON(t *testing.T) {
	file := filepath.Join(t.TempDir(), "header.vcf")
	err := os.WriteFile(file, []byte("##fileformat=VCFv4.2\n##FILTER=<ID=PASS,Description=\"All filters passed\">\n"), 0o600)
	require.NoError(t, err)

	out, err := runCLI(t, "", "--json", "vcf", file)
	require.NoError(t, err)
	require.JSONEq(t, `[
		{"key": "fileformat", "value": "VCFv4.2"},
		{"key": "FILTER", "value": [{"ID": "PASS", "Description": "All filters passed"}]}
	]`, out.stdout.String())
}

func TestReprOutput(t *testing.T) {
	out, err := runCLI(t, `<a />`, "xml")
	require.NoError(t, err)
	require.Contains(t, out.stdout.String(), `Name: "a"`)
}

func TestParseErrorIsReturned(t *testing.T) {
	_, err := runCLI(t, "<a>\n</b>", "xml")
	require.Error(t, err)
	var perr *bnb.Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, 2, perr.Location.Line)
	require.EqualError(t, err, "parse error at line 2 column 3: expected a")
}

func TestAllowTrailing(t *testing.T) {
	_, err := runCLI(t, `<a />x`, "xml")
	require.Error(t, err)

	out, err := runCLI(t, `<a />x`, "--allow-trailing", "--json", "xml")
	require.NoError(t, err)
	require.JSONEq(t, `{"name": "a", "attributes": {}, "children": []}`, out.stdout.String())
}

func TestTraceAndVerbose(t *testing.T) {
	out, err := runCLI(t, `<a />`, "--trace", "--verbose", "xml")
	require.NoError(t, err)
	require.Contains(t, out.stderr.String(), "element")
	require.Contains(t, out.stderr.String(), "grammar=xml")
}
