package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/vitalvas/ulid"
	"github.com/vitalvas/ulid/xconfig"
	"github.com/vitalvas/ulid/xlogger"
)

func main() {
	conf, err := xconfig.Load(
		xconfig.WithFiles(os.Getenv("ULID_CONFIG")),
		xconfig.WithEnv("ULID"),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := xlogger.New(xlogger.Config{
		Level:     conf.Log.Level,
		LogType:   conf.Log.Type,
		AddSource: conf.Log.AddSource,
		Output:    os.Stderr,
	})

	textCase, err := conf.Generator.TextCase()
	if err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}

	gen := ulid.NewGenerator(conf.Generator.Options()...)

	for i := 0; i < conf.Generator.Count; i++ {
		id, err := gen.Next()
		if err != nil {
			logger.Error("generate", "error", err)
			os.Exit(1)
		}

		fmt.Println(string(id.AppendFormat(nil, textCase)))

		logger.DebugContext(xlogger.WithTraceID(context.Background(), id), "generated",
			"monotonic", gen.Monotonic(),
			"time", id.Time(),
		)
	}

	for _, arg := range os.Args[1:] {
		id, err := ulid.Parse(arg)
		if err != nil {
			logger.Warn("inspect", "input", arg, "error", err)
			continue
		}

		entropy := id.Entropy()

		fmt.Println("id:", id)
		fmt.Println("time:", id.Time())
		fmt.Println("entropy:", hex.EncodeToString(entropy[:]))
		fmt.Println("uuid:", id.UUID())
	}
}
