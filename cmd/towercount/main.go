package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/shirou/gopsutil/v3/process"
	"github.com/spf13/cobra"

	"github.com/VladimirReshetnikov/go-towercount/sequence"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var terms int
	var logLevel string

	cmd := &cobra.Command{
		Use:   "towercount",
		Short: "Count the distinct values of parenthesized power towers of twos (OEIS A002845)",
		Long: "towercount prints successive terms of OEIS A002845, one line per\n" +
			"term, with the wall clock since start and the resident memory after a\n" +
			"forced collection. It runs until interrupted unless --terms is given.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(terms, logLevel)
		},
	}
	cmd.Flags().IntVarP(&terms, "terms", "n", 0, "stop after this many terms (0 = run until interrupted)")
	cmd.Flags().StringVar(&logLevel, "log-level", "INFO", "log level (DEBUG enables per-size progress)")
	return cmd
}

func run(terms int, logLevel string) error {
	logger.New(logLevel)
	defer logger.OnExit()

	self, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	start := time.Now()
	enum := sequence.New(sequence.WithLogger(logger.Sugar.WithServiceName("towercount")))
	for n, an := range enum.Terms() {
		line, err := reportLine(self, n, an, time.Since(start))
		if err != nil {
			return err
		}
		fmt.Println(line)
		if terms > 0 && n >= terms {
			break
		}
	}
	return enum.Err()
}

// reportLine formats one output line. The collection is forced first so
// the resident figure reflects steady state rather than garbage awaiting
// the next cycle.
func reportLine(self *process.Process, n, an int, elapsed time.Duration) (string, error) {
	runtime.GC()
	debug.FreeOSMemory()
	mi, err := self.MemoryInfo()
	if err != nil {
		return "", err
	}
	mb := float64(mi.RSS) / (1 << 20)
	return fmt.Sprintf("a(%d) = %d\t%s\t%12.2f MB", n, an, formatElapsed(elapsed), mb), nil
}

// formatElapsed renders a duration as h:mm:ss.ff with centisecond
// resolution.
func formatElapsed(d time.Duration) string {
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%d:%02d:%02d.%02d",
		cs/360000, cs/6000%60, cs/100%60, cs%100)
}
