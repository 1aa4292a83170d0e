package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/tailored-agentic-units/actions/action"
	"github.com/tailored-agentic-units/actions/config"
	"github.com/tailored-agentic-units/actions/middleware"
	"github.com/tailored-agentic-units/actions/observability"
	"github.com/tailored-agentic-units/actions/store"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to config JSON file (optional)")
		loadPath   = flag.String("load", "", "Path to a JSON array of todo titles to load")
		add        = flag.String("add", "", "Comma-separated todo titles to add")
		toggle     = flag.Int("toggle", -1, "Index of a todo to toggle after loading and adding")
		trace      = flag.Bool("trace", false, "Print every dispatched action as JSON")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configFile != "" {
		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}
	if err := config.ParseEnv(&cfg); err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}

	var logger *slog.Logger
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	observability.RegisterObserver("slog", observability.NewSlogObserver(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loadTodos := newLoadTodos(cfg.Delimiter)

	var mws []middleware.Middleware[store.API[State]]
	if *trace {
		mws = append(mws, traceActions(os.Stdout, logger))
	}
	mws = append(mws,
		middleware.Logger[store.API[State]](logger),
		middleware.Tasks[store.API[State]](ctx, logger, loadTodos),
	)

	todos, err := store.New[State](ctx, newTodoReducer(loadTodos), cfg.Store,
		store.WithLogger[State](logger),
		store.WithMiddleware[State](mws...),
	)
	if err != nil {
		log.Fatalf("Failed to create store: %v", err)
	}

	if *loadPath != "" {
		settled, ok := todos.Dispatch(loadTodos.Create(*loadPath)).(<-chan action.Action)
		if !ok {
			log.Fatal("Load was not handled by the task middleware")
		}
		select {
		case <-settled:
		case <-ctx.Done():
			log.Fatalf("Load interrupted: %v", ctx.Err())
		}
	}

	for _, title := range strings.Split(*add, ",") {
		if title = strings.TrimSpace(title); title != "" {
			todos.Dispatch(addTodo.Create(title))
		}
	}

	if *toggle >= 0 {
		todos.Dispatch(toggleTodo.Create(*toggle))
	}

	fmt.Println()
	printState(os.Stdout, todos.State())

	metrics := todos.Metrics()
	fmt.Printf("\nDispatched: %d, Reduced: %d, Unhandled: %d\n",
		metrics.Dispatched, metrics.Reduced, metrics.Unhandled)

	if history := todos.History(); len(history) > 0 {
		fmt.Printf("History: %s\n", strings.Join(history, " -> "))
	}
}
