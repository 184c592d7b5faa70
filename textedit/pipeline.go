// Package textedit is the line transform core: sources, the squeeze and
// numbering filters, and the Pipeline that runs them in order.
package textedit

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Options selects which transforms a Pipeline applies.
type Options struct {
	Number         bool
	NumberNonBlank bool
	ShowEnds       bool
	ShowTabs       bool
	SqueezeBlank   bool
}

// Stats summarizes a Pipeline run.
type Stats struct {
	// Lines is the number of lines written, diagnostics included.
	Lines int
	// Dropped is the number of blank lines removed by squeezing.
	Dropped int
	// Errors is the number of diagnostic lines written.
	Errors int
}

// Pipeline applies squeeze, tab display, end display and numbering, in that
// order, to each line it is given. It owns the squeeze and numbering state for
// a single run and must not be reused across runs.
type Pipeline struct {
	prog      string
	opts      Options
	numbering Numbering
	log       zerolog.Logger

	squeeze SqueezeState
	counter Counter
	stats   Stats
}

// New makes a Pipeline that prefixes diagnostics with prog.
func New(prog string, opts Options, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		prog:      prog,
		opts:      opts,
		numbering: Numbering{All: opts.Number, NonBlank: opts.NumberNonBlank},
		log:       log,
		counter:   NewCounter(),
	}
}

// Process runs one result through the pipeline. It returns false if the line
// was squeezed out. Errors bypass every transform and come back as a
// diagnostic line.
func (p *Pipeline) Process(r Result) (string, bool) {
	if r.Err != nil {
		p.stats.Errors++
		p.log.Debug().Err(r.Err).Msg("recoverable input error")
		return FormatError(p.prog, r.Err), true
	}
	line := r.Line
	if p.opts.SqueezeBlank {
		var ok bool
		if line, ok = Squeeze(&p.squeeze, line); !ok {
			p.stats.Dropped++
			return "", false
		}
	}
	if p.opts.ShowTabs {
		line = ShowTabs(line)
	}
	if p.opts.ShowEnds {
		line = ShowEnds(line)
	}
	return p.numbering.Prefix(&p.counter, line), true
}

// Run reads srcs in order, writing each processed line and a newline to out.
// Output is buffered and flushed once at the end. Only failures writing out
// are returned; input failures become diagnostic lines.
func (p *Pipeline) Run(srcs []Source, out io.Writer) (Stats, error) {
	if e := p.log.Debug(); e.Enabled() {
		names := make([]string, len(srcs))
		for i, src := range srcs {
			names[i] = src.Name()
		}
		e.Strs("sources", names).Msg("starting run")
	}
	w := bufio.NewWriter(out)
	for r := range Concat(srcs...) {
		line, ok := p.Process(r)
		if !ok {
			continue
		}
		if _, err := w.WriteString(line); err != nil {
			return p.stats, fmt.Errorf("writing output: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return p.stats, fmt.Errorf("writing output: %w", err)
		}
		p.stats.Lines++
	}
	if err := w.Flush(); err != nil {
		return p.stats, fmt.Errorf("flushing output: %w", err)
	}
	p.log.Debug().
		Int("lines", p.stats.Lines).
		Int("dropped", p.stats.Dropped).
		Int("errors", p.stats.Errors).
		Msg("run complete")
	return p.stats, nil
}
