package domain

import (
	"fmt"

	m "github.com/mouse-blink/bufsafe/internal/model"
)

// Generator produces rendered program instances.
type Generator interface {
	Generate() (m.Instance, error)
}

// GeneratorFactory builds a Generator over a random stream.
type GeneratorFactory func(rnd Rand, opts Options) Generator

// generator assembles one draft per call from a shared random stream.
type generator struct {
	rnd      Rand
	opts     Options
	sampler  *Sampler
	renderer Renderer
}

// NewGenerator returns a Generator drawing from rnd. rnd is not safe for
// concurrent use, so neither is the Generator.
func NewGenerator(rnd Rand, opts Options) Generator {
	return &generator{
		rnd:      rnd,
		opts:     opts,
		sampler:  NewSampler(rnd, opts),
		renderer: Renderer{Indent: opts.Indent, Annotate: opts.Annotate},
	}
}

// assembly is a finished draft before rendering.
type assembly struct {
	draft  *Draft
	region Region
	sample Sample
	decoys []Decoy
}

func (g *generator) Generate() (m.Instance, error) {
	a, err := g.assemble()
	if err != nil {
		return m.Instance{}, err
	}

	tags := a.draft.FullTags()

	text, err := g.renderer.Render(a.draft.Lines(), a.sample.Substitutions(), tags)
	if err != nil {
		return m.Instance{}, fmt.Errorf("failed to render instance: %w", err)
	}

	return m.Instance{Text: text, Tags: tags}, nil
}

func (g *generator) assemble() (assembly, error) {
	sample, pool := g.sampler.Sample()
	draft := NewDraft()

	if err := scheduleSetup(g.rnd, draft, condDeclInitPairs); err != nil {
		return assembly{}, err
	}

	region := appendControlFlow(draft, g.opts.IncludeCondWrite, sample.Safe())

	lo := g.opts.minDecoys()
	count := lo + g.rnd.IntN(g.opts.MaxDecoys-lo+1)

	return g.insertDecoys(assembly{draft: draft, region: region, sample: sample}, pool, count)
}

func (g *generator) insertDecoys(a assembly, pool *NamePool, count int) (assembly, error) {
	inserter := decoyInserter{rnd: g.rnd, sampler: g.sampler, pool: pool}

	for range count {
		region, decoy, err := inserter.insert(a.draft, a.region)
		if err != nil {
			return assembly{}, err
		}

		a.region = region
		a.decoys = append(a.decoys, decoy)
	}

	return a, a.draft.Check()
}
