package workflows

import (
	"context"
	"fmt"
	"iter"

	"github.com/PolarWolf314/titan/internal/configs"
	"github.com/PolarWolf314/titan/internal/envelope"
	terrors "github.com/PolarWolf314/titan/internal/errors"
	"github.com/PolarWolf314/titan/internal/registry"
	"github.com/PolarWolf314/titan/internal/store"
)

// Env locates the registry and configures the envelope codec. The zero
// value uses the user configuration and the default codec.
type Env struct {
	// RegistryPath overrides the registry location resolved from the
	// environment and config file.
	RegistryPath string

	// Codec overrides the envelope codec.
	Codec *envelope.Codec
}

func (e Env) codec() *envelope.Codec {
	if e.Codec != nil {
		return e.Codec
	}
	return envelope.NewCodec()
}

func (e Env) registry() (*registry.Registry, error) {
	if e.RegistryPath != "" {
		return registry.New(e.RegistryPath), nil
	}

	config, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return registry.New(config.RegistryPath()), nil
}

// lock resolves the registry and takes its lock. The caller must call the
// returned unlock function.
func (e Env) lock(ctx context.Context) (*registry.Registry, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	reg, err := e.registry()
	if err != nil {
		return nil, nil, err
	}

	l, err := reg.Lock()
	if err != nil {
		return nil, nil, err
	}

	return reg, func() { _ = l.Unlock() }, nil
}

// withActiveStore runs fn against the active store while holding the
// registry lock, so the store cannot be sealed underneath it.
func (e Env) withActiveStore(ctx context.Context, fn func(*store.Store) error) error {
	reg, unlock, err := e.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	path, ok := reg.Get()
	if !ok {
		return terrors.ErrNoActiveDatabase
	}

	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	return fn(s)
}

// activeSeq adapts a store query into a sequence that opens the active
// store on the first pull and closes it when iteration ends. Setup errors
// are yielded as the only element.
func (e Env) activeSeq(ctx context.Context, query func(*store.Store) iter.Seq2[store.Entry, error]) iter.Seq2[store.Entry, error] {
	return func(yield func(store.Entry, error) bool) {
		err := e.withActiveStore(ctx, func(s *store.Store) error {
			for entry, err := range query(s) {
				if err != nil {
					return err
				}
				if !yield(entry, nil) {
					return nil
				}
			}
			return nil
		})
		if err != nil {
			yield(store.Entry{}, err)
		}
	}
}
