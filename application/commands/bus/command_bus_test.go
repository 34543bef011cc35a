package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type renameCommand struct {
	Name string
}

func (c renameCommand) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func TestCommandBus_Send(t *testing.T) {
	b := NewCommandBus()
	var got string
	require.NoError(t, b.Register(renameCommand{}, HandlerFor(func(ctx context.Context, c renameCommand) error {
		got = c.Name
		return nil
	})))

	require.NoError(t, b.Send(context.Background(), renameCommand{Name: "Joeh"}))
	assert.Equal(t, "Joeh", got)

	assert.ErrorContains(t, b.Send(context.Background(), renameCommand{}), "name is required")
	assert.Error(t, b.Register(renameCommand{}, HandlerFor(func(ctx context.Context, c renameCommand) error { return nil })))
}

func TestCommandBus_UnregisteredCommand(t *testing.T) {
	b := NewCommandBus()

	err := b.Send(context.Background(), renameCommand{Name: "x"})

	assert.ErrorContains(t, err, "no handler registered")
}

func TestPipeline_AppliesInOrder(t *testing.T) {
	var trace []string
	mark := func(name string) Middleware {
		return func(next CommandHandler) CommandHandler {
			return CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
				trace = append(trace, name)
				return next.Handle(ctx, cmd)
			})
		}
	}
	handler := NewPipeline(mark("first"), LoggingMiddleware(zap.NewNop()), mark("second")).Execute(
		CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
			trace = append(trace, "handler")
			return nil
		}),
	)

	require.NoError(t, handler.Handle(context.Background(), renameCommand{Name: "x"}))
	assert.Equal(t, []string{"first", "second", "handler"}, trace)
}
