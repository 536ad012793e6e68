// Package pipeline wires the tokenizer and the normalization modules
// into a single text-to-spoken-text pass for Sorani Kurdish.
//
// Usage:
//
//	p, err := pipeline.New(normalize.DefaultConfig())
//	if err != nil {
//		...
//	}
//	out := p.Normalize("لە 12:30 وەرە")
//
// Normalize is safe for concurrent use; a Pipeline holds no per-call
// state.
package pipeline

import (
	"io"
	"regexp"
	"strings"

	"github.com/baditaflorin/l"
	"golang.org/x/text/unicode/norm"

	"github.com/RazwanSiktany/ckb-textify/normalize"
	"github.com/RazwanSiktany/ckb-textify/token"
	"github.com/RazwanSiktany/ckb-textify/tokenizer"
)

// Pipeline runs the enabled normalization modules over tokenized input,
// highest priority first, compacting consumed tokens between passes.
type Pipeline struct {
	modules []normalize.Module
	logger  l.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New builds a Pipeline for cfg. The config is validated up front so a
// bad mode string fails here rather than mid-stream. If no logger is
// provided, a silent default is created.
func New(cfg normalize.Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pipeline{modules: normalize.Modules(cfg)}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		logger, err := l.NewStandardFactory().CreateLogger(l.Config{
			Output:     io.Discard,
			JsonFormat: false,
			AsyncWrite: false,
		})
		if err != nil {
			return nil, err
		}
		p.logger = logger
	}
	return p, nil
}

// Default builds a Pipeline with every module enabled.
func Default() (*Pipeline, error) {
	return New(normalize.DefaultConfig())
}

// Normalize converts text into its fully spoken form. The input is NFC
// normalized first so composed and decomposed diacritics behave the
// same way.
func (p *Pipeline) Normalize(text string) string {
	text = norm.NFC.String(text)
	tokens := tokenizer.Tokenize(text)
	p.logger.Debug("tokenized input", "tokens", len(tokens))

	for _, m := range p.modules {
		tokens = m.Process(tokens)
		tokens = compact(tokens)
		p.logger.Debug("pass complete", "module", m.Name(), "tokens", len(tokens))
	}

	return canonicalWhitespace(tokenizer.Detokenize(tokens))
}

// compact drops consumed tokens, folding their trailing whitespace into
// the previous surviving token so word boundaries are not lost.
func compact(tokens []token.Token) []token.Token {
	out := tokens[:0]
	for _, t := range tokens {
		if t.Empty() {
			if len(out) > 0 && t.WhitespaceAfter != "" {
				out[len(out)-1].WhitespaceAfter += t.WhitespaceAfter
			}
			continue
		}
		out = append(out, t)
	}
	return out
}

var (
	spaceRun     = regexp.MustCompile(`[ \t]+`)
	newlineRun   = regexp.MustCompile(`[\r\n]+`)
	newlineSpace = regexp.MustCompile(` *\n *`)
)

// canonicalWhitespace collapses space runs to one space and newline runs
// to one newline, with no spaces touching a newline, then trims the
// ends.
func canonicalWhitespace(s string) string {
	s = spaceRun.ReplaceAllString(s, " ")
	s = newlineRun.ReplaceAllString(s, "\n")
	s = newlineSpace.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
