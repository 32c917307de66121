// Package domain contains the core domain models for the provisioning pipeline.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Pipeline is a strictly linear chain of stages. Unlike a general task graph
// there is no fan-out or fan-in: each stage is gated on exactly the stage
// before it, which is what preserves the layer-cache invariant (a layer is
// rebuilt iff its own inputs or an earlier layer changed).
type Pipeline struct {
	stages []Stage
	byName map[InternedString]int

	// Launch describes the process entry point of the built image. It is
	// metadata, not a stage: nothing executes at build time.
	Launch LaunchSpec
}

// NewPipeline creates an empty Pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{
		byName: make(map[InternedString]int),
	}
}

// Append adds a stage to the end of the chain.
// It returns an error if a stage with the same name already exists.
func (p *Pipeline) Append(s Stage) error {
	if _, exists := p.byName[s.Name]; exists {
		return zerr.With(ErrStageAlreadyExists, "stage", s.Name.String())
	}
	p.byName[s.Name] = len(p.stages)
	p.stages = append(p.stages, s)
	return nil
}

// Validate checks the structural invariants of the chain: at least one stage,
// unique names, and exactly one stage per kind that appears.
func (p *Pipeline) Validate() error {
	if len(p.stages) == 0 {
		return zerr.With(ErrPipelineNotLinear, "reason", "empty pipeline")
	}

	seen := make(map[StageKind]InternedString, len(p.stages))
	for _, s := range p.stages {
		if prev, dup := seen[s.Kind]; dup {
			err := zerr.With(ErrPipelineNotLinear, "kind", string(s.Kind))
			err = zerr.With(err, "stage", s.Name.String())
			return zerr.With(err, "conflicts_with", prev.String())
		}
		seen[s.Kind] = s.Name
	}
	return nil
}

// StageCount returns the number of stages in the chain.
func (p *Pipeline) StageCount() int {
	return len(p.stages)
}

// Stage returns the stage with the given name.
func (p *Pipeline) Stage(name InternedString) (Stage, error) {
	i, ok := p.byName[name]
	if !ok {
		return Stage{}, zerr.With(ErrUnknownStage, "stage", name.String())
	}
	return p.stages[i], nil
}

// Parent returns the name of the stage immediately before the given one.
// The first stage has no parent and returns the zero InternedString.
func (p *Pipeline) Parent(name InternedString) (InternedString, error) {
	i, ok := p.byName[name]
	if !ok {
		return InternedString{}, zerr.With(ErrUnknownStage, "stage", name.String())
	}
	if i == 0 {
		return InternedString{}, nil
	}
	return p.stages[i-1].Name, nil
}

// Walk returns an iterator that yields stages in execution order.
func (p *Pipeline) Walk() iter.Seq[Stage] {
	return func(yield func(Stage) bool) {
		for _, s := range p.stages {
			if !yield(s) {
				return
			}
		}
	}
}
