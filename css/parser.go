package css

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	ErrEmptyValue     = errors.New("empty value")
	ErrUnbalanced     = errors.New("unbalanced parentheses")
	ErrBadToken       = errors.New("unexpected token")
	ErrBadDeclaration = errors.New("malformed declaration")
)

// Parser turns CSS text into value trees. Parser has no state besides the
// logger and may be used concurrently.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// ParseValue parses text of a single property value.
func (p *Parser) ParseValue(text string) (Value, error) {
	lexer := css.NewLexer(parse.NewInputString(text))

	var tokens []css.Token
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("unable to tokenize value %q: %w", text, err)
			}
			break
		}
		if tt == css.CommentToken {
			continue
		}
		tokens = append(tokens, css.Token{TokenType: tt, Data: bytes.Clone(data)})
	}

	v, err := buildValue(tokens)
	if err != nil {
		return nil, fmt.Errorf("unable to parse value %q: %w", text, err)
	}
	return v, nil
}

// ParseDeclarations parses the body of a declaration block ("a: b; c: d").
// Malformed declarations are skipped, all problems are combined into returned
// error, which is reported together with whatever was parsed successfully.
func (p *Parser) ParseDeclarations(text string) ([]Declaration, error) {
	parser := css.NewParser(parse.NewInputString(text), true)
	return p.parseDeclarations(parser, css.ErrorGrammar)
}

// parseDeclarations reads declarations until end grammar (or input end) is reached.
func (p *Parser) parseDeclarations(parser *css.Parser, end css.GrammarType) (decls []Declaration, err error) {
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if perr := parser.Err(); perr != nil && !errors.Is(perr, io.EOF) {
				p.log.Debug("CSS parse error", zap.Error(perr))
				err = multierr.Append(err, perr)
			}
			return decls, err

		case end:
			return decls, err

		case css.DeclarationGrammar:
			name := strings.ToLower(string(data))
			values, important := stripImportant(parser.Values())
			v, verr := buildValue(values)
			if verr != nil {
				p.log.Debug("Skipping declaration", zap.String("property", name), zap.Error(verr))
				err = multierr.Append(err, fmt.Errorf("%w '%s': %w", ErrBadDeclaration, name, verr))
				continue
			}
			decls = append(decls, Declaration{Name: name, Value: v, Important: important})

		case css.CustomPropertyGrammar:
			// custom properties (--var) are not supported
			p.log.Debug("Skipping custom property", zap.String("property", string(data)))

		case css.TokenGrammar:
			err = multierr.Append(err, fmt.Errorf("%w: stray %q", ErrBadDeclaration, string(data)))
		}
	}
}

// Parse parses a stylesheet. Only plain rules are kept, @-rules are skipped
// with a warning.
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Rules:    make([]Rule, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				p.log.Debug("CSS parse error", zap.Error(err))
				sheet.Warnings = append(sheet.Warnings, err.Error())
			}
			return sheet

		case css.BeginAtRuleGrammar:
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+string(data))
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))
			skipAtRuleBlock(parser)

		case css.AtRuleGrammar:
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+string(data))
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))

		case css.BeginRulesetGrammar:
			selector := selectorText(data, parser.Values())
			decls, err := p.parseDeclarations(parser, css.EndRulesetGrammar)
			for _, e := range multierr.Errors(err) {
				sheet.Warnings = append(sheet.Warnings, selector+": "+e.Error())
			}
			sheet.Rules = append(sheet.Rules, Rule{Selector: selector, Declarations: decls})
		}
	}
}

// selectorText rebuilds selector string from token data.
func selectorText(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// stripImportant removes trailing "!important" from declaration tokens.
func stripImportant(tokens []css.Token) ([]css.Token, bool) {
	end := trimWhitespace(tokens)
	if end < 2 {
		return tokens[:end], false
	}
	last := tokens[end-1]
	if last.TokenType != css.IdentToken || !strings.EqualFold(string(last.Data), "important") {
		return tokens[:end], false
	}
	bang := trimWhitespace(tokens[:end-1])
	if bang == 0 || tokens[bang-1].TokenType != css.DelimToken || string(tokens[bang-1].Data) != "!" {
		return tokens[:end], false
	}
	return tokens[:bang-1], true
}

func trimWhitespace(tokens []css.Token) int {
	end := len(tokens)
	for end > 0 && tokens[end-1].TokenType == css.WhitespaceToken {
		end--
	}
	return end
}

// buildValue turns a flat token stream into a value tree: comma separated
// groups of space separated units.
func buildValue(tokens []css.Token) (Value, error) {
	var (
		groups  []Value
		current []Value
	)

	closeGroup := func() error {
		switch len(current) {
		case 0:
			return ErrEmptyValue
		case 1:
			groups = append(groups, current[0])
		default:
			groups = append(groups, SpaceList(current...))
		}
		current = nil
		return nil
	}

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch t.TokenType {
		case css.WhitespaceToken, css.CommentToken:
			continue

		case css.CommaToken:
			if err := closeGroup(); err != nil {
				return nil, err
			}

		case css.FunctionToken, css.LeftParenthesisToken:
			end, err := matchParenthesis(tokens, i)
			if err != nil {
				return nil, err
			}
			current = append(current, Unit{Kind: KindFunction, Data: functionText(tokens[i : end+1])})
			i = end

		case css.RightParenthesisToken:
			return nil, ErrUnbalanced

		default:
			u, err := unitFromToken(t)
			if err != nil {
				return nil, err
			}
			current = append(current, u)
		}
	}

	if err := closeGroup(); err != nil {
		return nil, err
	}
	if len(groups) == 1 {
		return groups[0], nil
	}
	return CommaList(groups...), nil
}

// matchParenthesis returns index of the token closing the function or block
// started at tokens[start].
func matchParenthesis(tokens []css.Token, start int) (int, error) {
	depth := 0
	for i := start; i < len(tokens); i++ {
		switch tokens[i].TokenType {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, ErrUnbalanced
}

// functionText renders function tokens with whitespace collapsed.
func functionText(tokens []css.Token) string {
	var sb strings.Builder
	pendingSpace := false
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			pendingSpace = true
			continue
		}
		if pendingSpace && sb.Len() > 0 && !strings.HasSuffix(sb.String(), " ") &&
			t.TokenType != css.RightParenthesisToken && t.TokenType != css.CommaToken {
			sb.WriteByte(' ')
		}
		pendingSpace = false
		sb.Write(t.Data)
		if t.TokenType == css.CommaToken {
			sb.WriteByte(' ')
		}
	}
	return strings.ReplaceAll(sb.String(), "( ", "(")
}

func unitFromToken(t css.Token) (Unit, error) {
	data := string(t.Data)
	switch t.TokenType {
	case css.IdentToken:
		return Unit{Kind: KindIdent, Data: data}, nil
	case css.NumberToken:
		n, err := strconv.ParseFloat(data, 64)
		if err != nil {
			return Unit{}, fmt.Errorf("%w: bad number %q", ErrBadToken, data)
		}
		return Unit{Kind: KindNumber, Data: data, Number: n}, nil
	case css.PercentageToken:
		n, err := strconv.ParseFloat(strings.TrimSuffix(data, "%"), 64)
		if err != nil {
			return Unit{}, fmt.Errorf("%w: bad percentage %q", ErrBadToken, data)
		}
		return Unit{Kind: KindPercentage, Data: data, Number: n}, nil
	case css.DimensionToken:
		n, unit, ok := parseDimension(data)
		if !ok {
			return Unit{}, fmt.Errorf("%w: bad dimension %q", ErrBadToken, data)
		}
		return Unit{Kind: KindDimension, Data: data, Number: n, Dimension: unit}, nil
	case css.StringToken:
		return Unit{Kind: KindString, Data: data}, nil
	case css.HashToken:
		return Unit{Kind: KindHash, Data: strings.ToLower(data)}, nil
	case css.URLToken:
		return Unit{Kind: KindURL, Data: data}, nil
	case css.DelimToken:
		return Unit{Kind: KindDelim, Data: data}, nil
	default:
		return Unit{}, fmt.Errorf("%w %q", ErrBadToken, data)
	}
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string, bool) {
	// Find where number ends, exponent is part of the number
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || ((r == '-' || r == '+') && (i == 0 || s[i-1] == 'e' || s[i-1] == 'E')) {
			numEnd = i + 1
			continue
		}
		if (r == 'e' || r == 'E') && i+1 < len(s) && (unicode.IsDigit(rune(s[i+1])) || ((s[i+1] == '-' || s[i+1] == '+') && i+2 < len(s) && unicode.IsDigit(rune(s[i+2])))) {
			numEnd = i + 1
			continue
		}
		break
	}
	if numEnd == 0 || numEnd == len(s) {
		return 0, "", false
	}
	num, err := strconv.ParseFloat(s[:numEnd], 64)
	if err != nil {
		return 0, "", false
	}
	return num, strings.ToLower(s[numEnd:]), true
}
