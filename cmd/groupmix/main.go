// SPDX-License-Identifier: MIT

// Command groupmix runs one clustering invocation described by a YAML request
// document and prints the four outputs as YAML.
//
//	groupmix [--log-level L] [--log-format text|json] [--outputs N] FILE
//
// FILE "-" reads the request from stdin. Both selectors are served by the
// deterministic single-cluster Baseline engine.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	flags "github.com/jessevdk/go-flags"
	"github.com/katalvlaran/groupmix/engine"
	"github.com/katalvlaran/groupmix/internal/config"
	"github.com/katalvlaran/groupmix/invoke"
	"github.com/katalvlaran/groupmix/request"
	"github.com/sirupsen/logrus"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// options are the command line flags; set flags override environment settings.
type options struct {
	LogLevel  string `long:"log-level" description:"log level (trace, debug, info, warn, error)"`
	LogFormat string `long:"log-format" description:"log format" choice:"text" choice:"json"`
	Outputs   int    `long:"outputs" description:"number of outputs to request (must be 4)"`
	Args      struct {
		File string `positional-arg-name:"FILE" description:"request document, - for stdin"`
	} `positional-args:"yes" required:"yes"`
}

func (o options) apply(s *config.Settings) {
	if o.LogLevel != "" {
		s.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		s.LogFormat = o.LogFormat
	}
	if o.Outputs != 0 {
		s.Outputs = o.Outputs
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(argv); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	opts.apply(&settings)

	logger, err := config.NewLogger(settings, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	log := logger.WithField("run_id", uuid.NewString())

	doc, err := readDocument(opts.Args.File, stdin)
	if err != nil {
		log.WithError(err).Error("cannot read request")
		return exitFailure
	}
	args, err := doc.Args()
	if err != nil {
		log.WithError(err).Error("cannot build arguments")
		return exitFailure
	}

	sink := io.Writer(io.Discard)
	if doc.IsVerbose() {
		w := config.NewLineWriter(log, logrus.InfoLevel)
		defer w.Close()
		sink = w
	}

	d := invoke.NewDispatcher(
		invoke.WithEngine(invoke.SGMC, engine.Baseline{}),
		invoke.WithEngine(invoke.GMC, engine.Baseline{}),
		invoke.WithLogger(log),
		invoke.WithSink(sink),
	)
	out, err := d.Call(settings.Outputs, args...)
	if err != nil {
		log.WithError(err).Error("invocation failed")
		return exitFailure
	}
	if err := request.Encode(stdout, out); err != nil {
		log.WithError(err).Error("cannot write response")
		return exitFailure
	}
	log.Debug("response written")

	return exitOK
}

// readDocument decodes the request at path, or stdin for "-".
func readDocument(path string, stdin io.Reader) (request.Document, error) {
	if path == "-" {
		return request.Decode(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return request.Document{}, err
	}
	defer f.Close()

	return request.Decode(f)
}
