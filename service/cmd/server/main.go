// Command server runs one colorful dice game session and serves it to a UI
// shell over HTTP and websockets.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Neha1998/colorful-dice-adventure/engine"
	"github.com/Neha1998/colorful-dice-adventure/service/internal/cache"
	"github.com/Neha1998/colorful-dice-adventure/service/internal/config"
	"github.com/Neha1998/colorful-dice-adventure/service/internal/game"
	"github.com/Neha1998/colorful-dice-adventure/service/internal/logging"
	"github.com/Neha1998/colorful-dice-adventure/service/internal/shell"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logrus.WithError(err).Fatal("Failed loading config.")
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		logrus.WithError(err).Fatal("Failed building logger.")
	}

	if err := run(cfg, log); err != nil {
		log.WithError(err).Error("Server stopped.")
		os.Exit(1)
	}
}

func run(cfg config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := game.Options{Logger: log}
	rules := engine.Rules{AutoAdvance: cfg.AutoAdvance}
	timings := cfg.Timings()
	opts.Rules = &rules
	opts.Timings = &timings

	if cfg.RedisAddr != "" {
		rdb, err := cache.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			return err
		}
		defer rdb.Close()
		pub := cache.NewPublisher(rdb, cfg.RedisChannel)
		opts.Historian = pub
		log.WithFields(logrus.Fields{"addr": cfg.RedisAddr, "channel": pub.Channel()}).Info("Publishing actions to Redis.")
	}

	sess, err := game.NewSession(opts)
	if err != nil {
		return err
	}
	defer sess.Close()

	sh := shell.New(sess, log.WithField("component", "shell"))
	sess.OnStateChange = sh.PublishState
	sess.BroadcastFn = sh.PublishEvent

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           sh.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(logrus.Fields{"addr": cfg.Addr, "session": sess.ID.String()}).Info("Listening.")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("Shutting down.")
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
