// Command rigkey turns a job file into keyframe data for the puppet rig.
//
// Usage:
//
//	rigkey -job examples/head_bob.yaml
//	rigkey -job examples/right_arm.yaml -mode ik -preview arm.png
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/puppetbox/rigkey"
	"github.com/puppetbox/rigkey/internal/job"
)

func main() {
	var (
		jobPath     = flag.String("job", "", "job file (required)")
		mode        = flag.String("mode", string(job.ModeAll), "pipelines to run: curve, ik or all")
		format      = flag.String("format", string(job.FormatYAML), "output format: yaml or svg")
		output      = flag.String("out", "", "output file (default stdout)")
		previewPath = flag.String("preview", "", "write a PNG preview to this file")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *jobPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		rigkey.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	m, err := job.ParseMode(*mode)
	if err != nil {
		log.Fatalf("Invalid flag: %v", err)
	}
	f, err := job.ParseFormat(*format)
	if err != nil {
		log.Fatalf("Invalid flag: %v", err)
	}

	j, err := job.Load(*jobPath)
	if err != nil {
		log.Fatalf("Failed to load job: %v", err)
	}

	if err := run(j, job.Options{Mode: m, Format: f, PreviewPath: *previewPath}, *output); err != nil {
		log.Fatalf("Failed to run job: %v", err)
	}
	if *output != "" {
		log.Printf("Keyframes saved to %s\n", *output)
	}
}

// run writes to stdout, or to the named file when output is set.
func run(j *job.Job, opts job.Options, output string) error {
	if output == "" {
		return job.Run(j, opts, os.Stdout)
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := job.Run(j, opts, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
