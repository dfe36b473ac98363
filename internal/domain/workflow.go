package domain

import (
	"context"
	"fmt"

	"github.com/mouse-blink/bufsafe/internal/adapter"
	"github.com/mouse-blink/bufsafe/internal/controller"
	m "github.com/mouse-blink/bufsafe/internal/model"
	"go.uber.org/zap"
)

// GenerateArgs holds the parameters of one corpus generation run.
type GenerateArgs struct {
	OutDir       m.Path
	Count        int
	Seed         int64
	TautOnly     bool
	LinearOnly   bool
	MetadataFile m.Path
	Threads      int
	Annotate     bool
}

// PreviewArgs holds the parameters for printing instances without saving.
type PreviewArgs struct {
	Count    int
	Seed     int64
	TautOnly bool
	Annotate bool
}

// StatsArgs points at a metadata document to summarize.
type StatsArgs struct {
	MetadataFile m.Path
}

// Workflow defines the interface for the generator's top-level operations.
type Workflow interface {
	Generate(ctx context.Context, args GenerateArgs) error
	Preview(args PreviewArgs) error
	Stats(args StatsArgs) error
}

type workflow struct {
	store        adapter.InstanceStore
	metadata     adapter.MetadataStore
	ui           controller.UI
	newGenerator GeneratorFactory
	opts         Options
	logger       *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
// opts.IncludeCondWrite and opts.Annotate are overridden per run.
func NewWorkflow(
	store adapter.InstanceStore,
	metadata adapter.MetadataStore,
	ui controller.UI,
	newGenerator GeneratorFactory,
	opts Options,
	logger *zap.Logger,
) Workflow {
	if newGenerator == nil {
		newGenerator = NewGenerator
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &workflow{
		store:        store,
		metadata:     metadata,
		ui:           ui,
		newGenerator: newGenerator,
		opts:         opts,
		logger:       logger,
	}
}

// Generate validates the output directory, generates every instance in
// memory, then writes them and the optional metadata document. A generation
// failure therefore leaves no files behind.
func (w *workflow) Generate(ctx context.Context, args GenerateArgs) error {
	if args.Count < 0 {
		return fmt.Errorf("instance count must not be negative, got %d", args.Count)
	}

	dir, err := w.store.ResolveDir(args.OutDir)
	if err != nil {
		return err
	}

	opts := w.runOptions(args.TautOnly, args.Annotate)
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid generator options: %w", err)
	}

	if args.LinearOnly {
		w.logger.Warn("linear-only mode has no generation path; flag ignored")
	}

	log := w.logger.With(
		zap.String("outdir", string(dir)),
		zap.Int("count", args.Count),
		zap.Int64("seed", args.Seed),
		zap.Bool("taut_only", args.TautOnly),
	)
	log.Info("starting generation")

	if err := w.ui.Start(controller.WithGenerateMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayRunInfo(controller.RunInfo{
		OutDir:   dir,
		Count:    args.Count,
		Seed:     args.Seed,
		Threads:  args.Threads,
		TautOnly: args.TautOnly,
	})

	instances, md, summary, err := w.generateAll(dir, args.Count, args.Seed, opts, log)
	if err != nil {
		return w.ui.DisplaySummary(summary, err)
	}

	err = w.store.WriteAll(ctx, dir, instances, args.Threads, w.ui.DisplayWrittenInfo)
	if err != nil {
		return w.ui.DisplaySummary(summary, fmt.Errorf("failed to write instances: %w", err))
	}

	log.Info("instances written", zap.Int("collisions", summary.Collisions))

	if args.MetadataFile != "" {
		if err := w.metadata.Save(args.MetadataFile, md); err != nil {
			return w.ui.DisplaySummary(summary, err)
		}

		log.Info("metadata saved", zap.String("path", string(args.MetadataFile)))
	}

	if err := w.ui.DisplaySummary(summary, nil); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// generateAll draws instances until count distinct file names exist.
// Instances whose name is already taken are discarded and resampled.
func (w *workflow) generateAll(dir m.Path, count int, seed int64, opts Options, log *zap.Logger) ([]m.Instance, m.Metadata, m.Summary, error) {
	gen := w.newGenerator(NewRand(seed), opts)
	md := m.NewMetadata(dir, count)
	summary := m.NewSummary()
	instances := make([]m.Instance, 0, count)

	for len(instances) < count {
		inst, err := gen.Generate()
		if err != nil {
			return nil, md, summary, fmt.Errorf("failed to generate instance %d: %w", len(instances), err)
		}

		name := w.store.NameFor(inst.Text)
		if _, exists := md.Tags[name]; exists {
			summary.Collisions++
			log.Debug("file name collision, resampling", zap.String("name", name))

			continue
		}

		inst.Name = name
		md.Tags[name] = inst.Tags
		summary.Add(inst.Tags)
		instances = append(instances, inst)

		log.Debug("instance generated", zap.String("name", name), zap.Int("lines", len(inst.Tags)))
		w.ui.DisplayGeneratedInfo(len(instances), count)
	}

	return instances, md, summary, nil
}

// Preview prints freshly generated instances without touching the disk.
func (w *workflow) Preview(args PreviewArgs) error {
	opts := w.runOptions(args.TautOnly, args.Annotate)
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid generator options: %w", err)
	}

	gen := w.newGenerator(NewRand(args.Seed), opts)

	for i := range args.Count {
		inst, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("failed to generate instance %d: %w", i, err)
		}

		inst.Name = w.store.NameFor(inst.Text)
		if err := w.ui.DisplayPreview(inst); err != nil {
			return err
		}
	}

	return nil
}

// Stats loads a metadata document and displays its tag totals.
func (w *workflow) Stats(args StatsArgs) error {
	if err := w.ui.Start(controller.WithStatsMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	md, loadErr := w.metadata.Load(args.MetadataFile)
	if err := w.ui.DisplayStats(md, loadErr); err != nil {
		return err
	}

	w.logger.Debug("stats loaded", zap.String("path", string(args.MetadataFile)), zap.Int("files", len(md.Tags)))
	w.ui.Wait()

	return nil
}

func (w *workflow) runOptions(tautOnly, annotate bool) Options {
	opts := w.opts
	opts.IncludeCondWrite = !tautOnly
	opts.Annotate = annotate

	return opts
}
