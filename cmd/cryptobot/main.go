// Command cryptobot отвечает на вопросы о ценах криптовалют: консольное меню,
// разовый запрос или telegram-бот.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kitbuilder587/crypto-price-bot/internal/classifier"
	"github.com/kitbuilder587/crypto-price-bot/internal/coinlore"
	"github.com/kitbuilder587/crypto-price-bot/internal/config"
	"github.com/kitbuilder587/crypto-price-bot/internal/console"
	"github.com/kitbuilder587/crypto-price-bot/internal/dispatcher"
	"github.com/kitbuilder587/crypto-price-bot/internal/domain"
	"github.com/kitbuilder587/crypto-price-bot/internal/llm/gemini"
	"github.com/kitbuilder587/crypto-price-bot/internal/metrics"
	"github.com/kitbuilder587/crypto-price-bot/internal/telegram"
	"github.com/kitbuilder587/crypto-price-bot/internal/tools"
)

const usage = `usage:
  cryptobot                 interactive menu
  cryptobot ask "<text>"    one free-form request
  cryptobot telegram        run the telegram bot`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	mode, err := parseMode(args)
	if err != nil {
		return err
	}
	// справке не нужны ни ключ, ни сеть
	if mode.run == nil {
		fmt.Println(usage)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	d := buildDispatcher(cfg, logger, m)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Metrics.Addr != "" {
		srv := &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           metricsMux(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			logger.Info("metrics server started", zap.String("addr", cfg.Metrics.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			return srv.Shutdown(shutdownCtx)
		})
	}

	logger.Info("starting", zap.String("mode", mode.name))

	g.Go(func() error {
		// режим закончился - гасим остальное
		defer cancel()
		return mode.run(gctx, cfg, d, logger)
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func buildDispatcher(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) *dispatcher.Dispatcher {
	source := coinlore.New(coinlore.Config{
		BaseURL: cfg.Coinlore.BaseURL,
		Timeout: cfg.Coinlore.Timeout,
	}, logger, m)

	registry := tools.NewDefaultRegistry(source, logger)

	var c classifier.Classifier = classifier.NewRules()
	if cfg.Classifier == config.ClassifierLLM {
		model := gemini.New(gemini.Config{
			APIKey:  cfg.LLM.APIKey,
			Model:   cfg.LLM.Model,
			BaseURL: cfg.LLM.BaseURL,
			Timeout: cfg.LLM.Timeout,
		}, logger, m)
		c = classifier.NewModel(model, registry.Specs(), classifier.NewRules(), logger)
	}

	logger.Info("dispatcher ready",
		zap.String("classifier", cfg.Classifier),
		zap.Strings("tools", registry.Names()),
	)

	return dispatcher.New(c, registry, logger, m)
}

func metricsMux(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HandlerFor(reg))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

type runner struct {
	name string
	run  func(ctx context.Context, cfg *config.Config, d *dispatcher.Dispatcher, logger *zap.Logger) error
}

func parseMode(args []string) (runner, error) {
	if len(args) == 0 {
		return runner{name: "menu", run: runMenu}, nil
	}

	switch args[0] {
	case "ask":
		text := strings.TrimSpace(strings.Join(args[1:], " "))
		if text == "" {
			return runner{}, fmt.Errorf("ask: missing request text\n%s", usage)
		}
		return runner{name: "ask", run: func(ctx context.Context, _ *config.Config, d *dispatcher.Dispatcher, logger *zap.Logger) error {
			return console.New(os.Stdin, os.Stdout, d, logger).Ask(ctx, domain.NewRequest(text, ""))
		}}, nil
	case "telegram":
		return runner{name: "telegram", run: runTelegram}, nil
	case "-h", "--help", "help":
		return runner{name: "help"}, nil
	default:
		return runner{}, fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func runMenu(ctx context.Context, _ *config.Config, d *dispatcher.Dispatcher, logger *zap.Logger) error {
	return console.New(os.Stdin, os.Stdout, d, logger).RunMenu(ctx)
}

func runTelegram(ctx context.Context, cfg *config.Config, d *dispatcher.Dispatcher, logger *zap.Logger) error {
	if cfg.Telegram.Token == "" {
		return errors.New("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	bot, err := telegram.New(telegram.BotConfig{Token: cfg.Telegram.Token}, d, logger)
	if err != nil {
		return err
	}
	return bot.Run(ctx)
}
