package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/formsmith/formsmith/compiler"
	"github.com/formsmith/formsmith/compiler/ir"
	"github.com/formsmith/formsmith/compiler/parser"
	"github.com/formsmith/formsmith/internal/app"
	"github.com/formsmith/formsmith/internal/config"
	"github.com/formsmith/formsmith/internal/mcp"
	"github.com/formsmith/formsmith/internal/pkg/logger"
	"github.com/formsmith/formsmith/internal/service"
	transport "github.com/formsmith/formsmith/internal/transport/http"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	cmd := os.Args[1]

	switch cmd {
	case "generate":
		runGenerate(os.Args[2:])
	case "serve":
		runServe()
	case "mcp":
		mcp.Run()
	case "version":
		fmt.Printf("formsmith v%s\n", compiler.Version)
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("formsmith — form descriptor compiler v%s\n", compiler.Version)
	fmt.Println("\nUsage:")
	fmt.Println("  formsmith generate <descriptor>  Compile a descriptor file into source files")
	fmt.Println("  formsmith serve                  Run the HTTP API")
	fmt.Println("  formsmith mcp                    Run the MCP tool server over stdio")
	fmt.Println("  formsmith version                Print the version")
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	out := fs.String("out", ".", "output directory")
	framework := fs.String("framework", "", "override target framework (next, react, tanstack, remix)")
	db := fs.String("db", "", "override database adapter (prisma, drizzle)")
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Println("generate needs exactly one descriptor file (json, yaml, or cue)")
		os.Exit(1)
	}

	form, err := parser.LoadFile(fs.Arg(0))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if *framework != "" {
		form.Framework = ir.Framework(*framework)
	}
	if *db != "" {
		form.Database = ir.DatabaseAdapter(*db)
	}
	if err := service.ValidateDescriptor(form); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	bundle := compiler.Generate(form)
	for _, f := range bundle.Files {
		dst := filepath.Join(*out, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(dst, []byte(f.Contents), 0o644); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  wrote %s\n", dst)
	}

	manifest, err := compiler.Manifest(form, bundle)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	dst := filepath.Join(*out, "formsmith.manifest.json")
	if err := os.WriteFile(dst, []byte(manifest), 0o644); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  wrote %s\n", dst)
	fmt.Printf("Done: %d files, install deps: %v\n", len(bundle.Files)+1, bundle.Dependencies)
}

func runServe() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}
	log := logger.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := app.InitTracing(ctx, cfg.OTLPEndpoint)
	if err != nil {
		log.Error("tracing init failed", "err", err)
		os.Exit(1)
	}

	container, err := app.NewContainer(ctx, cfg)
	if err != nil {
		log.Error("container init failed", "err", err)
		os.Exit(1)
	}
	defer container.Close()

	startSweeper(ctx, container)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: transport.NewRouter(container.SvcForms, cfg.CORSOrigins, cfg.MaxDescriptorB),
	}

	go func() {
		log.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	grace, err := time.ParseDuration(cfg.ShutdownGrace)
	if err != nil {
		grace = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing shutdown failed", "err", err)
	}
}

// startSweeper runs hourly TTL cleanup when the store tier supports it.
func startSweeper(ctx context.Context, container *app.Container) {
	sweeper, ok := container.Store.(interface {
		Sweep(ctx context.Context) (int64, error)
	})
	if !ok {
		return
	}
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := sweeper.Sweep(ctx)
				if err != nil {
					logger.From(ctx).Warn("sweep failed", "err", err)
					continue
				}
				if n > 0 {
					logger.From(ctx).Info("swept expired forms", "count", n)
				}
			}
		}
	}()
}
