// Command bnb parses documents with the example grammars and dumps the result.
package main

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"

	"github.com/bnb-go/bnb"
	"github.com/bnb-go/bnb/examples/vcf"
	"github.com/bnb-go/bnb/examples/xmlish"
)

var version = "dev"

type Globals struct {
	Verbose       bool `short:"v" help:"Log debug information to stderr."`
	Trace         bool `help:"Write a parse trace to stderr."`
	AllowTrailing bool `help:"Accept unparsed input after the document."`
	JSON          bool `help:"Print the result as JSON."`

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (g *Globals) logger() *logrus.Entry {
	l := logrus.New()
	l.Out = g.stderr
	l.Level = logrus.WarnLevel
	if g.Verbose {
		l.Level = logrus.DebugLevel
	}
	return logrus.NewEntry(l)
}

type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version."`
	XML     xmlCmd           `cmd:"" name:"xml" help:"Parse an XML-like document."`
	VCF     vcfCmd           `cmd:"" name:"vcf" help:"Parse a VCF meta-information header."`
}

type xmlCmd struct {
	File string `arg:"" default:"-" type:"existingfile" help:"Document to parse (read from stdin if omitted)."`
}

func (c *xmlCmd) Run(g *Globals) error {
	return run(g, "xml", c.File, xmlish.Document)
}

type vcfCmd struct {
	File string `arg:"" default:"-" type:"existingfile" help:"VCF header to parse (read from stdin if omitted)."`
}

func (c *vcfCmd) Run(g *Globals) error {
	return run(g, "vcf", c.File, vcf.Header)
}

func run[A any](g *Globals, grammar, file string, parser bnb.Parser[A]) error {
	log := g.logger().WithFields(logrus.Fields{"grammar": grammar, "file": file})
	input, err := readInput(g.stdin, file)
	if err != nil {
		return err
	}
	log.WithField("bytes", len(input)).Debug("read input")

	var options []bnb.ParseOption
	if g.AllowTrailing {
		options = append(options, bnb.AllowTrailing())
	}
	if g.Trace {
		options = append(options, bnb.Trace(g.stderr))
	}
	start := time.Now()
	value, err := parser.TryParse(string(input), options...)
	log.WithField("elapsed", time.Since(start)).Debug("parsed")
	if err != nil {
		return err
	}

	if g.JSON {
		enc := json.NewEncoder(g.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	}
	repr.New(g.stdout, repr.Indent("  "), repr.OmitEmpty(true)).Println(value)
	return nil
}

// readInput reads file, or stdin when file is "-". kong leaves an omitted
// existingfile argument empty rather than applying its "-" default.
func readInput(stdin io.Reader, file string) ([]byte, error) {
	if file == "" || file == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(file)
}

func main() {
	cli := CLI{Globals: Globals{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}}
	kctx := kong.Parse(&cli,
		kong.Description(`Parse documents with the bnb example grammars.`),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)
	err := kctx.Run(&cli.Globals)
	kctx.FatalIfErrorf(err)
}
