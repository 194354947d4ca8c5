package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/suparena/assignment"
	"github.com/suparena/assignment/wiring"
)

const manifestEnv = "ASSIGNMENT_MANIFEST"

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// A missing .env is fine; the environment may already be set.
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}

	os.Exit(exitCode(logger, run(os.Stdout, os.Args[1:], logger)))
}

// exitCode logs err, flushes logger and returns the process exit status.
func exitCode(logger *zap.Logger, err error) int {
	code := 0
	if err != nil {
		logger.Error("manifest check failed", zap.Error(err))
		code = 1
	}
	_ = logger.Sync()
	return code
}

// run parses flags and checks the manifest they point at.
func run(out io.Writer, args []string, logger *zap.Logger) error {
	fs := flag.NewFlagSet("assignmanifest", flag.ContinueOnError)
	fs.SetOutput(out)
	versionFlag := fs.Bool("version", false, "Show version information")
	vFlag := fs.Bool("v", false, "Show version information (short)")
	manifestFlag := fs.String("manifest", os.Getenv(manifestEnv), "Path to the relationship manifest (default $"+manifestEnv+")")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *versionFlag || *vFlag {
		info := assignment.GetVersionInfo()
		fmt.Fprintf(out, "assignment assignmanifest version %s\n", info.Version)
		fmt.Fprintf(out, "Git commit: %s\n", info.GitCommit)
		fmt.Fprintf(out, "Build date: %s\n", info.BuildDate)
		fmt.Fprintf(out, "Go version: %s\n", info.GoVersion)
		return nil
	}

	if *manifestFlag == "" {
		return fmt.Errorf("no manifest given: use -manifest or set %s", manifestEnv)
	}

	m, err := wiring.Load(*manifestFlag)
	if err != nil {
		return err
	}

	exps := m.Expectations()
	for _, exp := range exps {
		logger.Info("relationship",
			zap.String("source", exp.Source),
			zap.String("target", exp.Target),
			zap.Stringer("mode", exp.Mode),
		)
	}
	fmt.Fprintf(out, "%s: %d relationships, %d functions\n", *manifestFlag, len(m.Relationships), len(exps))
	return nil
}
