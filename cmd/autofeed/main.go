package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"
	tele "gopkg.in/telebot.v4"

	"github.com/umputun/autofeed/pkg/bot"
	"github.com/umputun/autofeed/pkg/config"
	"github.com/umputun/autofeed/pkg/delivery"
	"github.com/umputun/autofeed/pkg/render"
	"github.com/umputun/autofeed/pkg/scheduler"
	"github.com/umputun/autofeed/pkg/sender"
	"github.com/umputun/autofeed/pkg/service"
	"github.com/umputun/autofeed/pkg/store"
	"github.com/umputun/autofeed/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"yaml config file, defaults are used if not set"`
	Store  string `short:"s" long:"store" env:"STORE" description:"feed store location, overrides config"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DryRun bool   `long:"dry-run" env:"DRY_RUN" description:"log messages instead of sending them"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)
	log.Printf("[INFO] starting autofeed version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	log.Print("[INFO] shutdown complete")
}

// run wires store, scheduler, senders and front ends, and blocks until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if opts.Store != "" {
		cfg.Store.Path = opts.Store
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if secrets := secretsOf(cfg); len(secrets) > 0 {
		setupLog(opts.Debug, opts.NoColor, secrets...)
	}

	st, err := store.New(ctx, store.Config{Driver: cfg.Store.Driver, Path: cfg.Store.Path})
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Printf("[WARN] failed to close store: %v", err)
		}
	}()

	var tgBot *tele.Bot
	if cfg.Telegram.Token != "" && !opts.DryRun {
		tgBot, err = tele.NewBot(tele.Settings{Token: cfg.Telegram.Token, Poller: &tele.LongPoller{Timeout: cfg.Telegram.Timeout}})
		if err != nil {
			return fmt.Errorf("failed to make telegram bot: %w", err)
		}
	}

	invoker := delivery.NewInvoker(st, makeSender(cfg, tgBot, opts.DryRun), render.New())
	sched := scheduler.NewScheduler(scheduler.Params{
		Store:           st,
		Invoker:         invoker,
		Unit:            cfg.Schedule.Unit,
		DeliveryTimeout: cfg.Schedule.DeliveryTimeout,
	})
	feeds := service.NewFeedService(st, sched)
	lifecycle := service.NewLifecycle(st, sched)
	srv := server.New(cfg, feeds, revision, opts.Debug)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return lifecycle.Run(gctx) })
	g.Go(func() error { return srv.Run(gctx) })
	if tgBot != nil {
		listener := bot.NewListener(tgBot, bot.NewCommands(feeds, cfg.Telegram.OwnerID))
		g.Go(func() error { return listener.Run(gctx) })
	}
	return g.Wait()
}

// makeSender builds destination router: "tg:" and "hook:" prefixes go to their senders,
// unprefixed destinations to the configured default. Dry run logs everything.
func makeSender(cfg *config.Config, tgBot *tele.Bot, dryRun bool) *sender.Multi {
	logSender := sender.Log{}
	if dryRun {
		log.Printf("[INFO] dry run, messages are logged only")
		return sender.NewMulti(logSender).Route("log", logSender)
	}

	webhook := sender.NewWebhook(&http.Client{Timeout: cfg.Webhook.Timeout}, cfg.Webhook.Hooks)
	var def sender.Sender = logSender
	switch cfg.DefaultSender {
	case "webhook":
		def = webhook
	case "telegram":
		if tgBot != nil {
			def = sender.NewTelegram(tgBot, cfg.Telegram.Rate)
		}
	}

	res := sender.NewMulti(def).Route("log", logSender).Route("hook", webhook)
	if tgBot != nil {
		res.Route("tg", sender.NewTelegram(tgBot, cfg.Telegram.Rate))
	}
	log.Printf("[INFO] default sender %s, webhooks %v, telegram %v", cfg.DefaultSender, cfg.WebhookNames(), tgBot != nil)
	return res
}

func secretsOf(cfg *config.Config) []string {
	var res []string
	for _, s := range []string{cfg.Telegram.Token, cfg.Server.AuthPassword} {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
