// Command idfcat reads IDF-3.0 style board exchange files, parses them,
// and prints their structure as YAML. It exits non-zero on the first file
// that fails to parse, reporting the failure as file:line:col: message.
//
// The parser itself does no I/O; this command is the thin loading shell
// around it. Files are parsed concurrently since every parse is an
// independent pure transformation of its own input.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/ecadtools/idf30/ast"
	"github.com/ecadtools/idf30/parser"
	"github.com/ecadtools/idf30/reporter"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var quiet, stripCR bool
	cmd := &cobra.Command{
		Use:   "idfcat [flags] file-or-glob ...",
		Short: "Parse IDF-3.0 style board files and print their structure",
		Long: `idfcat parses IDF-3.0 style board exchange files and prints the parsed
document tree as YAML, one YAML document per input file. Arguments may be
file paths or glob patterns (including ** for recursive matching).

The grammar has no carriage returns; files produced on Windows can be
normalized first with --strip-cr.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandArgs(args)
			if err != nil {
				return err
			}
			return run(cmd, files, quiet, stripCR)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress document output; only report parse failures")
	cmd.Flags().BoolVar(&stripCR, "strip-cr", false, "normalize CRLF line endings before parsing")
	return cmd
}

func expandArgs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			// no match: treat it as a literal path and let the read
			// produce the error message
			files = append(files, arg)
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}

func run(cmd *cobra.Command, files []string, quiet, stripCR bool) error {
	docs := make([]*ast.Document, len(files))
	fileErrs := make([]error, len(files))
	var g errgroup.Group
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			data, err := os.ReadFile(name)
			if err != nil {
				fileErrs[i] = err
				return nil
			}
			if stripCR {
				data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
			}
			doc, err := parser.Parse(name, bytes.NewReader(data), reporter.NewHandler(nil))
			if err != nil {
				fileErrs[i] = err
				return nil
			}
			docs[i] = doc
			return nil
		})
	}
	// workers report through fileErrs so one bad file does not hide the
	// diagnostics of the others
	_ = g.Wait()
	if err := errors.Join(fileErrs...); err != nil {
		return err
	}
	if quiet {
		return nil
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()
	for i, doc := range docs {
		if err := enc.Encode(documentNode(files[i], doc)); err != nil {
			return err
		}
	}
	return nil
}

// documentNode converts a parsed document to plain maps and slices so the
// YAML output is scalars and lists rather than Go struct internals.
func documentNode(name string, doc *ast.Document) map[string]any {
	sections := make([]any, len(doc.Sections))
	for i, s := range doc.Sections {
		sections[i] = sectionNode(s.Name, s.Args, s.Records)
	}
	return map[string]any{
		"file":     name,
		"header":   sectionNode(doc.Header.Name, doc.Header.Args, doc.Header.Records),
		"sections": sections,
	}
}

func sectionNode(name string, args []string, records []ast.Record) map[string]any {
	n := map[string]any{"name": name}
	if len(args) > 0 {
		n["args"] = args
	}
	recs := make([]any, len(records))
	for i, r := range records {
		vals := make([]any, len(r))
		for j, v := range r {
			vals[j] = scalar(v)
		}
		recs[i] = vals
	}
	n["records"] = recs
	return n
}

func scalar(v ast.Value) any {
	switch v := v.(type) {
	case ast.Integer:
		return v.Val
	case ast.Float:
		return v.Val
	case ast.String:
		return v.Val
	case ast.QuotedString:
		return v.Val
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}
