// Package graceful coordinates background process startup and ordered shutdown.
// Stoppers run in reverse registration order so dependencies outlive their users.
package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slices"

	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
)

type ProcessStarter func() error

type ProcessStopper func(ctx context.Context) error

type ProcessStartStopper interface {
	Start() ProcessStarter
	Stop() ProcessStopper
}

func StartProcessAtBackground(ps ...ProcessStarter) {
	for _, p := range ps {
		if p != nil {
			go func(_p func() error) {
				_ = _p()
			}(p)
		}
	}
}

// StopProcessAtBackground blocks until SIGINT, SIGTERM or SIGUSR1, then runs
// the stoppers with the given per-stopper timeout.
func StopProcessAtBackground(duration time.Duration, ps ...ProcessStopper) {
	sigusr1 := make(chan os.Signal, 1)
	signal.Notify(sigusr1, syscall.SIGUSR1)

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigterm:
	case <-sigusr1:
	}

	StopProcess(duration, ps...)
}

func StopProcess(duration time.Duration, ps ...ProcessStopper) {
	slices.Reverse(ps)

	for _, p := range ps {
		func() {
			if p == nil {
				return
			}
			ctx, stop := context.WithTimeout(context.Background(), duration)
			defer stop()
			if err := p(ctx); err != nil {
				xlog.Warn(ctx, "[GRACEFUL] stop process", xlog.Err(err))
			}
		}()
	}
}
