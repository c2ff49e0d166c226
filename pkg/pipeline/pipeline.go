package pipeline

import (
	"fmt"

	"github.com/Ricardojnf33/project1-airbnb-nyc/pkg/data"
)

// Stage is one transformation step over the listings table.
type Stage interface {
	Name() string
	Apply(data.Table) (data.Table, error)
}

type stageFunc struct {
	name string
	fn   func(data.Table) (data.Table, error)
}

func (s stageFunc) Name() string                           { return s.name }
func (s stageFunc) Apply(t data.Table) (data.Table, error) { return s.fn(t) }

// StageFunc wraps a plain function as a Stage.
func StageFunc(name string, fn func(data.Table) (data.Table, error)) Stage {
	return stageFunc{name: name, fn: fn}
}

// Pipeline chains stages, feeding each one the previous output.
type Pipeline struct {
	stages []Stage
}

func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run applies every stage in order, reporting row counts as it goes. The
// first stage error aborts the run.
func (p *Pipeline) Run(t data.Table) (data.Table, error) {
	for _, s := range p.stages {
		out, err := s.Apply(t)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name(), err)
		}
		fmt.Printf("%s: %d rows -> %d rows\n", s.Name(), len(t), len(out))
		t = out
	}
	return t, nil
}
