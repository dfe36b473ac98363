package domain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/bufsafe/internal/adapter"
	adaptermocks "github.com/mouse-blink/bufsafe/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/bufsafe/internal/controller/mocks"
	m "github.com/mouse-blink/bufsafe/internal/model"
)

// stubGenerator hands out canned instances and then a fixed error.
type stubGenerator struct {
	instances []m.Instance
	err       error
}

func (s *stubGenerator) Generate() (m.Instance, error) {
	if len(s.instances) == 0 {
		return m.Instance{}, s.err
	}

	inst := s.instances[0]
	s.instances = s.instances[1:]

	return inst, nil
}

func stubFactory(gen Generator) GeneratorFactory {
	return func(_ Rand, _ Options) Generator { return gen }
}

func passThroughSummary(_ m.Summary, err error) error {
	return err
}

func expectGenerateUI(ui *controllermocks.MockUI) {
	ui.On("Start", mock.Anything).Return(nil).Once()
	ui.On("Close").Return().Once()
	ui.On("DisplayRunInfo", mock.Anything).Return().Once()
	ui.On("DisplayGeneratedInfo", mock.Anything, mock.Anything).Return().Maybe()
}

func TestWorkflow_Generate_ResamplesCollisions(t *testing.T) {
	store := adaptermocks.NewMockInstanceStore(t)
	meta := adaptermocks.NewMockMetadataStore(t)
	ui := controllermocks.NewMockUI(t)

	gen := &stubGenerator{instances: []m.Instance{
		{Text: "one", Tags: []m.Tag{m.TagOther, m.TagBufwriteCondSafe}},
		{Text: "one again", Tags: []m.Tag{m.TagOther, m.TagBufwriteCondSafe}},
		{Text: "two", Tags: []m.Tag{m.TagOther, m.TagBufwriteTautUnsafe}},
	}}

	store.On("ResolveDir", m.Path("out")).Return(m.Path("/abs/out"), nil).Once()
	store.On("NameFor", "one").Return("a.c").Once()
	store.On("NameFor", "one again").Return("a.c").Once()
	store.On("NameFor", "two").Return("b.c").Once()
	store.On("WriteAll", mock.Anything, m.Path("/abs/out"), mock.MatchedBy(func(instances []m.Instance) bool {
		return len(instances) == 2 && instances[0].Name == "a.c" && instances[1].Name == "b.c"
	}), 3, mock.Anything).Return(nil).Once()

	meta.On("Save", m.Path("meta.json"), mock.MatchedBy(func(md m.Metadata) bool {
		return md.WorkingDir == "/abs/out" && md.NumInstances == 2 && len(md.Tags) == 2 &&
			md.Tags["b.c"][1] == m.TagBufwriteTautUnsafe
	})).Return(nil).Once()

	expectGenerateUI(ui)
	ui.On("DisplaySummary", mock.MatchedBy(func(s m.Summary) bool {
		return s.Instances == 2 && s.Collisions == 1 && s.Safe() == 1 && s.Unsafe() == 1
	}), nil).Return(nil).Once()
	ui.On("Wait").Return().Once()

	wf := NewWorkflow(store, meta, ui, stubFactory(gen), DefaultOptions(), nil)

	err := wf.Generate(context.Background(), GenerateArgs{
		OutDir:       "out",
		Count:        2,
		MetadataFile: "meta.json",
		Threads:      3,
	})

	require.NoError(t, err)
}

func TestWorkflow_Generate_FailureWritesNothing(t *testing.T) {
	store := adaptermocks.NewMockInstanceStore(t)
	meta := adaptermocks.NewMockMetadataStore(t)
	ui := controllermocks.NewMockUI(t)

	store.On("ResolveDir", m.Path("out")).Return(m.Path("/abs/out"), nil).Once()
	expectGenerateUI(ui)
	ui.On("DisplaySummary", mock.Anything, mock.MatchedBy(func(err error) bool {
		return errors.Is(err, ErrPoolExhausted)
	})).Return(passThroughSummary).Once()

	opts := DefaultOptions()
	opts.PoolSize = reservedNames + 1

	wf := NewWorkflow(store, meta, ui, nil, opts, nil)

	err := wf.Generate(context.Background(), GenerateArgs{
		OutDir:       "out",
		Count:        5,
		TautOnly:     true,
		MetadataFile: "meta.json",
		Threads:      1,
	})

	require.ErrorIs(t, err, ErrPoolExhausted)
	store.AssertNotCalled(t, "WriteAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	meta.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestWorkflow_Generate_BadDirectory(t *testing.T) {
	store := adaptermocks.NewMockInstanceStore(t)
	ui := controllermocks.NewMockUI(t)
	missing := errors.New("no such directory")

	store.On("ResolveDir", m.Path("nowhere")).Return(m.Path(""), missing).Once()

	wf := NewWorkflow(store, adaptermocks.NewMockMetadataStore(t), ui, nil, DefaultOptions(), nil)

	err := wf.Generate(context.Background(), GenerateArgs{OutDir: "nowhere", Count: 1})

	require.ErrorIs(t, err, missing)
	ui.AssertNotCalled(t, "Start", mock.Anything)
}

func TestWorkflow_Generate_WriteError(t *testing.T) {
	store := adaptermocks.NewMockInstanceStore(t)
	ui := controllermocks.NewMockUI(t)
	diskFull := errors.New("disk full")

	store.On("ResolveDir", m.Path("out")).Return(m.Path("out"), nil).Once()
	store.On("NameFor", mock.Anything).Return("x.c").Once()
	store.On("WriteAll", mock.Anything, m.Path("out"), mock.Anything, 1, mock.Anything).Return(diskFull).Once()
	expectGenerateUI(ui)
	ui.On("DisplaySummary", mock.Anything, mock.Anything).Return(passThroughSummary).Once()

	gen := &stubGenerator{instances: []m.Instance{{Text: "x"}}}
	wf := NewWorkflow(store, adaptermocks.NewMockMetadataStore(t), ui, stubFactory(gen), DefaultOptions(), nil)

	err := wf.Generate(context.Background(), GenerateArgs{OutDir: "out", Count: 1, Threads: 1})

	require.ErrorIs(t, err, diskFull)
}

func TestWorkflow_Generate_NegativeCount(t *testing.T) {
	wf := NewWorkflow(nil, nil, nil, nil, DefaultOptions(), nil)

	err := wf.Generate(context.Background(), GenerateArgs{OutDir: "out", Count: -1})

	require.Error(t, err)
}

func TestWorkflow_Generate_WritesCorpus(t *testing.T) {
	dir := t.TempDir()
	metaPath := filepath.Join(t.TempDir(), "meta.json")
	ui := controllermocks.NewMockUI(t)

	expectGenerateUI(ui)
	ui.On("DisplayWrittenInfo", mock.Anything).Return().Times(20)
	ui.On("DisplaySummary", mock.Anything, nil).Return(nil).Once()
	ui.On("Wait").Return().Once()

	metaStore := adapter.NewMetadataStore()
	wf := NewWorkflow(adapter.NewLocalInstanceStore(5, ".c"), metaStore, ui, NewGenerator, DefaultOptions(), nil)

	err := wf.Generate(context.Background(), GenerateArgs{
		OutDir:       m.Path(dir),
		Count:        20,
		Seed:         11,
		MetadataFile: m.Path(metaPath),
		Threads:      4,
		Annotate:     true,
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 20)

	md, err := metaStore.Load(m.Path(metaPath))
	require.NoError(t, err)
	assert.Equal(t, 20, md.NumInstances)
	require.Len(t, md.Tags, 20)

	for _, entry := range entries {
		name := entry.Name()
		assert.Regexp(t, `^[0-9a-f]{10}\.c$`, name)

		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)

		tags, ok := md.Tags[name]
		require.True(t, ok, "metadata missing %s", name)
		assert.Len(t, strings.Split(string(data), "\n"), len(tags), name)
	}
}

func TestWorkflow_Generate_LinearOnlyIsIgnored(t *testing.T) {
	store := adaptermocks.NewMockInstanceStore(t)
	ui := controllermocks.NewMockUI(t)

	store.On("ResolveDir", m.Path("out")).Return(m.Path("out"), nil).Once()
	store.On("WriteAll", mock.Anything, m.Path("out"), mock.Anything, 1, mock.Anything).Return(nil).Once()
	expectGenerateUI(ui)
	ui.On("DisplaySummary", mock.Anything, nil).Return(nil).Once()
	ui.On("Wait").Return().Once()

	wf := NewWorkflow(store, adaptermocks.NewMockMetadataStore(t), ui, stubFactory(&stubGenerator{}), DefaultOptions(), nil)

	err := wf.Generate(context.Background(), GenerateArgs{OutDir: "out", Count: 0, LinearOnly: true, Threads: 1})

	require.NoError(t, err)
}

func TestWorkflow_Preview(t *testing.T) {
	store := adaptermocks.NewMockInstanceStore(t)
	ui := controllermocks.NewMockUI(t)

	var seen []Options

	factory := func(rnd Rand, opts Options) Generator {
		seen = append(seen, opts)
		return NewGenerator(rnd, opts)
	}

	store.On("NameFor", mock.Anything).Return(func(text string) string {
		return fmt.Sprintf("%d.c", len(text))
	}).Times(3)
	ui.On("DisplayPreview", mock.MatchedBy(func(inst m.Instance) bool {
		return strings.HasSuffix(inst.Name, ".c") && !strings.Contains(inst.Text, "//") &&
			!strings.Contains(inst.Text, "BUFWRITE_COND")
	})).Return(nil).Times(3)

	wf := NewWorkflow(store, nil, ui, factory, DefaultOptions(), nil)

	err := wf.Preview(PreviewArgs{Count: 3, Seed: 5, TautOnly: true})

	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.False(t, seen[0].IncludeCondWrite)
	assert.False(t, seen[0].Annotate)
}

func TestWorkflow_Stats(t *testing.T) {
	meta := adaptermocks.NewMockMetadataStore(t)
	ui := controllermocks.NewMockUI(t)

	md := m.Metadata{WorkingDir: "/c", NumInstances: 1, Tags: map[string][]m.Tag{"a.c": {m.TagOther}}}

	meta.On("Load", m.Path("meta.json")).Return(md, nil).Once()
	ui.On("Start", mock.Anything).Return(nil).Once()
	ui.On("Close").Return().Once()
	ui.On("DisplayStats", md, nil).Return(nil).Once()
	ui.On("Wait").Return().Once()

	wf := NewWorkflow(nil, meta, ui, nil, DefaultOptions(), nil)

	require.NoError(t, wf.Stats(StatsArgs{MetadataFile: "meta.json"}))
}

func TestWorkflow_Stats_LoadError(t *testing.T) {
	meta := adaptermocks.NewMockMetadataStore(t)
	ui := controllermocks.NewMockUI(t)
	broken := errors.New("broken json")

	meta.On("Load", m.Path("meta.json")).Return(m.Metadata{}, broken).Once()
	ui.On("Start", mock.Anything).Return(nil).Once()
	ui.On("Close").Return().Once()
	ui.On("DisplayStats", m.Metadata{}, broken).Return(broken).Once()

	wf := NewWorkflow(nil, meta, ui, nil, DefaultOptions(), nil)

	require.ErrorIs(t, wf.Stats(StatsArgs{MetadataFile: "meta.json"}), broken)
}
