package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssprop/archive"
	"cssprop/css"
	"cssprop/state"
	"cssprop/style"
	"cssprop/utils/debug"
)

// block is a single declaration block of the input, selector is empty when
// input is a bare declaration list. Blocks without declaration only carry a
// comment.
type block struct {
	selector string
	comment  string
	decl     *style.Declaration
}

func runNormalize(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	blocks, err := loadBlocks(env, cmd, cmd.Bool("longhands"))
	if err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	writeNormalized(buf, blocks)
	return emit(env, "normalized.css", buf.Bytes())
}

func runExpand(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	blocks, err := loadBlocks(env, cmd, true)
	if err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	writeExpanded(buf, blocks)
	return emit(env, "expanded.css", buf.Bytes())
}

func runProperties(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	onlyShorthands := cmd.Bool("shorthands")
	for _, name := range env.Factory.Names() {
		shorthand := env.Factory.IsShorthand(name)
		if onlyShorthands && !shorthand {
			continue
		}
		p, _ := env.Factory.Create(name)
		var members []string
		if shorthand {
			members = env.Factory.LonghandsOf(name)
		}
		fmt.Fprintln(os.Stdout, propertyLine(name, p.Flags().String(), members))
	}
	return nil
}

func emit(env *state.LocalEnv, name string, data []byte) error {
	env.Rpt.StoreData("output/"+name, data)
	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("unable to write results: %w", err)
	}
	return nil
}

// source is a single stylesheet taken from the command line argument, STDIN
// or an archive entry.
type source struct {
	name string
	data []byte
}

// loadBlocks reads and decodes requested sources and applies their
// declarations to fresh declaration blocks. Invalid declarations are dropped
// with a warning. When more than one source was read blocks of every source
// are preceded by a comment with its name.
func loadBlocks(env *state.LocalEnv, cmd *cli.Command, longhands bool) ([]block, error) {
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	name := cmd.String("encoding")
	if len(name) == 0 {
		name = env.Cfg.Input.Encoding
	}
	if len(name) > 0 {
		enc, err := lookupEncoding(name)
		if err != nil {
			return nil, err
		}
		env.CodePage = enc
	}

	sources, err := readSources(env, cmd.Args().Get(0))
	if err != nil {
		return nil, err
	}

	var blocks []block
	for _, src := range sources {
		text, err := decodeSource(src.data, env.CodePage, env.Log)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.name, err)
		}
		if len(sources) > 1 {
			blocks = append(blocks, block{comment: src.name})
		}
		blocks = append(blocks, parseBlocks(env, text, src.name, longhands)...)
	}
	return blocks, nil
}

func readSources(env *state.LocalEnv, name string) ([]source, error) {
	limit := env.Cfg.Input.MaxSize

	if strings.EqualFold(filepath.Ext(name), ".zip") {
		var sources []source
		err := archive.Walk(name, ".css", limit, func(entry string, data []byte) error {
			env.Rpt.StoreData("input/"+entry, data)
			sources = append(sources, source{name: entry, data: data})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("unable to read archive '%s': %w", name, err)
		}
		if len(sources) == 0 {
			env.Log.Warn("No stylesheets found in archive", zap.String("archive", name))
		}
		return sources, nil
	}

	data, err := readSource(name, limit)
	if err != nil {
		return nil, err
	}
	if len(name) > 0 && name != "-" {
		if err := env.Rpt.StoreCopy("input/"+filepath.Base(name), name); err != nil {
			env.Log.Warn("Unable to store source in report", zap.Error(err))
		}
	} else {
		name = "stdin"
		env.Rpt.StoreData("input/stdin.css", data)
	}
	return []source{{name: name, data: data}}, nil
}

// parseBlocks treats text with braces as stylesheet, anything else as a
// single declaration list.
func parseBlocks(env *state.LocalEnv, text, name string, longhands bool) []block {
	parser := css.NewParser(env.Log)

	var sheet *css.Stylesheet
	if strings.Contains(text, "{") {
		sheet = parser.Parse([]byte(text), name)
		for _, w := range sheet.Warnings {
			env.Log.Warn("Ignoring CSS", zap.String("reason", w))
		}
	} else {
		decls, err := parser.ParseDeclarations(text)
		warn(env.Log, "", err)
		sheet = &css.Stylesheet{Rules: []css.Rule{{Declarations: decls}}}
	}
	if env.Rpt != nil {
		env.Rpt.StoreData("parsed/"+name+".txt", []byte(debug.Stylesheet(sheet)))
	}

	blocks := make([]block, 0, len(sheet.Rules))
	for _, rule := range sheet.Rules {
		d := env.NewDeclaration(longhands)
		warn(env.Log, rule.Selector, d.Apply(rule.Declarations))
		blocks = append(blocks, block{selector: rule.Selector, decl: d})
	}
	return blocks
}

func warn(log *zap.Logger, selector string, err error) {
	for _, e := range multierr.Errors(err) {
		if len(selector) > 0 {
			log.Warn("Dropping declaration", zap.String("selector", selector), zap.Error(e))
		} else {
			log.Warn("Dropping declaration", zap.Error(e))
		}
	}
}

func writeNormalized(w io.Writer, blocks []block) {
	for _, b := range blocks {
		if b.decl == nil {
			fmt.Fprintf(w, "/* %s */\n", b.comment)
			continue
		}
		if len(b.selector) == 0 {
			fmt.Fprintln(w, b.decl.CSSText())
			continue
		}
		if b.decl.Length() == 0 {
			fmt.Fprintf(w, "%s {}\n", b.selector)
			continue
		}
		fmt.Fprintf(w, "%s { %s }\n", b.selector, b.decl.CSSText())
	}
}

func writeExpanded(w io.Writer, blocks []block) {
	for _, b := range blocks {
		if b.decl == nil {
			fmt.Fprintf(w, "/* %s */\n", b.comment)
			continue
		}
		indent := ""
		if len(b.selector) > 0 {
			fmt.Fprintf(w, "%s {\n", b.selector)
			indent = "  "
		}
		for _, p := range b.decl.Longhands() {
			line := p.Name() + ": " + p.SerializeValue()
			if b.decl.GetPropertyPriority(p.Name()) == style.PriorityImportant {
				line += " !important"
			}
			fmt.Fprintf(w, "%s%s;\n", indent, line)
		}
		if len(b.selector) > 0 {
			fmt.Fprintln(w, "}")
		}
	}
}
