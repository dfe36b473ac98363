package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/bufsafe/internal/model"
)

func TestAppendControlFlow_WorkedExamples(t *testing.T) {
	tests := []struct {
		name    string
		trueIdx int
		want    m.Tag
	}{
		{name: "true branch in bounds", trueIdx: 1, want: m.TagBufwriteCondSafe},
		{name: "true branch overflows", trueIdx: 7, want: m.TagBufwriteCondUnsafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := Sample{BufLen: 5, IdxInit: 2, Thresh: 4, TrueIdx: tt.trueIdx, FalseIdx: 9}
			d := draftOf("setup")

			region := appendControlFlow(d, true, sample.Safe())

			assert.Equal(t, Region{Start: 1, End: 7}, region)
			require.Equal(t, 7, d.Len())
			assert.Equal(t, tt.want, d.Tags()[6])

			for _, tag := range d.Tags()[1:6] {
				assert.Equal(t, m.TagBody, tag)
			}
		})
	}
}

func TestAppendControlFlow_WithoutWrite(t *testing.T) {
	d := NewDraft()

	region := appendControlFlow(d, false, true)

	assert.Equal(t, Region{Start: 0, End: 5}, region)
	assert.Equal(t, CondGuardLines(), d.Lines())
}
