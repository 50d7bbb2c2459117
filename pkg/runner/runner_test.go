package runner_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turadg/jsdocfmt/pkg/config"
	"github.com/turadg/jsdocfmt/pkg/jsdoc"
	"github.com/turadg/jsdocfmt/pkg/runner"
)

func TestFormatBlocksOrdered(t *testing.T) {
	const n = 64
	blocks := make([]jsdoc.Block, n)
	for i := range blocks {
		blocks[i] = jsdoc.Block{{
			Title: "param",
			Type:  "number",
			Name:  fmt.Sprintf("arg%d", i),
		}}
	}

	got, err := runner.New(nil, nil).FormatBlocks(context.Background(), blocks, nil)

	require.NoError(t, err)
	require.Len(t, got, n)
	for i, body := range got {
		assert.Equal(t, fmt.Sprintf("@param {number} arg%d", i), body)
	}
}

func TestFormatBlocksEmpty(t *testing.T) {
	got, err := runner.New(nil, nil).FormatBlocks(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFormatBlocksSingleJob(t *testing.T) {
	opts := config.Default()
	opts.Jobs = 1

	blocks := []jsdoc.Block{
		{{Title: "description", Description: "First block."}},
		{{Title: "description", Description: "Second block."}},
	}

	got, err := runner.New(nil, nil).FormatBlocks(context.Background(), blocks, opts)

	require.NoError(t, err)
	assert.Equal(t, []string{"First block.", "Second block."}, got)
}

func TestFormatBlocksCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	blocks := make([]jsdoc.Block, 16)
	for i := range blocks {
		blocks[i] = jsdoc.Block{{Title: "returns", Type: "void"}}
	}

	_, err := runner.New(nil, nil).FormatBlocks(ctx, blocks, nil)

	assert.ErrorIs(t, err, context.Canceled)
}
