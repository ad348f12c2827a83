package main

import (
	"context"
	"strings"
	"testing"

	"linkfatec/internal/viewmodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReadTabs(t *testing.T) {
	positions := make(chan int)
	go readTabs(context.Background(), strings.NewReader("1\n\nfoo\n 2 \n"), positions, zap.NewNop())

	var got []int
	for tab := range positions {
		got = append(got, tab)
	}
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestJobID(t *testing.T) {
	id, err := jobID([]string{"42"})
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, args := range [][]string{nil, {"0"}, {"-3"}, {"abc"}, {"1", "2"}} {
		_, err := jobID(args)
		assert.Error(t, err, "args %v", args)
	}
}

func TestCommandsAreListed(t *testing.T) {
	require.Len(t, commandOrder, len(commands))
	for _, name := range commandOrder {
		assert.Contains(t, commands, name)
	}
}

func TestRenderOnSeesStatesPublishedBeforeItsLoopRuns(t *testing.T) {
	store := viewmodel.NewStore(viewmodel.OpportunitiesState{})
	seen := make(chan viewmodel.OpportunitiesState, 1)
	follow := renderOn(store, func(st viewmodel.OpportunitiesState) { seen <- st })

	store.Update(func(s viewmodel.OpportunitiesState) viewmodel.OpportunitiesState {
		s.Error = true
		return s
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go follow(ctx)

	assert.True(t, (<-seen).Error)
}
