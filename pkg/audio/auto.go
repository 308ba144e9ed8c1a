package audio

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"
)

type backend interface {
	io.Closer
	Ping(context.Context) error
}

// lastSuccessful remembers the factory that worked the last time, so it is
// tried first on the next auto-selection.
type lastSuccessful[F any] struct {
	locker  sync.Mutex
	factory F
	isSet   bool
}

func (l *lastSuccessful[F]) get() (F, bool) {
	l.locker.Lock()
	defer l.locker.Unlock()
	return l.factory, l.isSet
}

func (l *lastSuccessful[F]) set(factory F) {
	l.locker.Lock()
	defer l.locker.Unlock()
	l.factory, l.isSet = factory, true
}

func tryFactory[F any, B backend](
	ctx context.Context,
	factory F,
	newBackend func(F) (B, error),
) (B, error) {
	b, err := newBackend(factory)
	logger.Debugf(ctx, "initializing %T result is %v", factory, err)
	if err != nil {
		var zero B
		return zero, fmt.Errorf("unable to initialize %T: %w", factory, err)
	}

	err = b.Ping(ctx)
	logger.Debugf(ctx, "pinging %T result is %v", b, err)
	if err != nil {
		_ = b.Close()
		var zero B
		return zero, fmt.Errorf("unable to ping %T: %w", b, err)
	}
	return b, nil
}

// autoSelect returns the first backend (in the given factories order) that
// could be initialized and pinged, trying the last successful factory first.
func autoSelect[F any, B backend](
	ctx context.Context,
	last *lastSuccessful[F],
	factories []F,
	newBackend func(F) (B, error),
) (B, error) {
	if factory, ok := last.get(); ok {
		b, err := tryFactory(ctx, factory, newBackend)
		if err == nil {
			return b, nil
		}
		logger.Debugf(ctx, "the last successful factory does not work anymore: %v", err)
	}

	var mErr *multierror.Error
	for _, factory := range factories {
		b, err := tryFactory(ctx, factory, newBackend)
		if err != nil {
			mErr = multierror.Append(mErr, err)
			continue
		}
		last.set(factory)
		return b, nil
	}

	var zero B
	if err := mErr.ErrorOrNil(); err != nil {
		return zero, err
	}
	return zero, fmt.Errorf("no backends are registered")
}
