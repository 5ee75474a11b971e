// Command paramdemo runs a set of validated calls and prints the localized
// outcome of each.
//
// Settings come from the environment, see paramvalidator.Config.
// PARAMDEMO_ENV=production switches the log output to JSON:
//
//	PARAMVALIDATOR_LOCALE=es go run ./cmd/paramdemo
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	pv "github.com/dmitrymomot/paramvalidator"
	"github.com/dmitrymomot/paramvalidator/pkg/config"
	"github.com/dmitrymomot/paramvalidator/pkg/i18n"
	"github.com/dmitrymomot/paramvalidator/pkg/logger"
)

type callIDKey struct{}

type demoConfig struct {
	Env string `env:"PARAMDEMO_ENV" envDefault:"development"`
}

type scenario struct {
	title string
	run   func(ctx context.Context) error
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "paramdemo:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := pv.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	var demo demoConfig
	if err := config.Load(&demo); err != nil {
		return fmt.Errorf("load demo config: %w", err)
	}

	log := logger.New(
		logger.WithEnvironment(demo.Env, "paramdemo"),
		logger.WithOutput(os.Stderr),
		logger.WithContextValue("call_id", callIDKey{}),
	)

	translator, err := pv.NewTranslator(ctx, i18n.WithLogger(log))
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}
	ctx = i18n.SetLocale(ctx, cfg.Locale)

	for _, s := range scenarios(cfg, log) {
		fmt.Println(s.title)
		callCtx := context.WithValue(ctx, callIDKey{}, uuid.NewString())
		if err := s.run(callCtx); err != nil {
			fmt.Printf("\t%T\n\t%s\n", err, pv.LocalizeContext(callCtx, translator, err))
			continue
		}
		fmt.Println("\tok")
	}
	return nil
}

func scenarios(cfg pv.Config, log *slog.Logger) []scenario {
	positional := pv.New(
		pv.WithArgs(
			pv.Require(pv.Int).Between(3, 5),
			pv.Require(pv.String),
			pv.Optional(pv.List),
		),
		pv.WithLogger(log),
		pv.WithConfig(cfg),
	)
	myfunc, err := pv.WrapFunc(positional, greet, pv.WithName("paramdemo", "myfunc"))
	if err != nil {
		panic(err)
	}

	named := pv.New(
		pv.WithKwarg("age", pv.Require(pv.Int).Between(25, 50)),
		pv.WithKwarg("name", pv.Require(pv.String)),
		pv.WithKwarg("addresses", pv.Optional(pv.List)),
		pv.WithLogger(log),
		pv.WithConfig(cfg),
	)
	mykwfunc := named.Wrap(pv.Function{Module: "paramdemo", Name: "mykwfunc"}, greetNamed)

	method, err := pv.WrapFunc(positional, (*greeter).greet, pv.AsMethod())
	if err != nil {
		panic(err)
	}
	g := &greeter{prefix: "Hello from method"}

	return []scenario{
		{"Standalone args - success", func(context.Context) error {
			return myfunc(3, "hey", nil)
		}},
		{"Standalone args - invalid type", func(context.Context) error {
			return myfunc("1", "hey", nil)
		}},
		{"Standalone args - out of range", func(context.Context) error {
			return myfunc(1, "hey", nil)
		}},
		{"Standalone args - too many arguments", func(ctx context.Context) error {
			_, err := positional.Wrap(pv.Function{Module: "paramdemo", Name: "myfunc", Arity: 3}, greetNamed)(
				ctx, pv.Positional(3, "hey", nil, "one too many"))
			return err
		}},
		{"Standalone kwargs - success", func(ctx context.Context) error {
			_, err := mykwfunc(ctx, pv.Named(map[string]any{"age": 25, "name": "Fred Jones"}))
			return err
		}},
		{"Standalone kwargs - missing required", func(ctx context.Context) error {
			_, err := mykwfunc(ctx, pv.Named(map[string]any{"age": 25}))
			return err
		}},
		{"Standalone kwargs - out of range", func(ctx context.Context) error {
			_, err := mykwfunc(ctx, pv.Named(map[string]any{"age": 10, "name": "hey"}))
			return err
		}},
		{"Method args - success", func(context.Context) error {
			return method(g, 4, "str", []any{})
		}},
		{"Method args - nil not allowed", func(context.Context) error {
			return method(g, nil, "hey", nil)
		}},
	}
}

func greet(num any, name any, list any) error {
	fmt.Println("\tHello from standalone function")
	return nil
}

func greetNamed(_ context.Context, args pv.Args) (any, error) {
	fmt.Println("\tHello from kwargs standalone function")
	return nil, nil
}

type greeter struct {
	prefix string
}

func (g *greeter) greet(num any, name any, list any) error {
	fmt.Println("\t" + g.prefix)
	return nil
}
