package passes

import (
	"github.com/tliron/commonlog"

	"sable/internal/typing"
)

var log = commonlog.GetLogger("sable.passes")

// Pass represents a single transformation over one function body
type Pass interface {
	Name() string
	Run(fn *typing.Function) bool // Returns true if changes were made
	Description() string
}

// Pipeline manages the sequence of transformation passes applied to a
// function after type checking
type Pipeline struct {
	passes []Pass
}

// NewPipeline creates an empty pipeline; callers add the passes a
// compilation mode needs
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// AddPass adds a transformation pass to the pipeline
func (p *Pipeline) AddPass(pass Pass) {
	p.passes = append(p.passes, pass)
}

// Run executes all passes on the function in order
func (p *Pipeline) Run(fn *typing.Function) {
	for _, pass := range p.passes {
		changed := pass.Run(fn)
		if changed {
			log.Infof("%s: rewrote %s (%s)", pass.Name(), fn.Name, pass.Description())
		} else {
			log.Debugf("%s: no changes for %s", pass.Name(), fn.Name)
		}
	}
}
