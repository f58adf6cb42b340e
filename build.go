//go:build ignore

// build.go - Lead Report build script
// Usage: go run build.go [-target=TARGET] [-v]
// Targets: all, lead-report, lead-web, test, clean

package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	module  = "leadcli"
	distDir = "dist"
)

var executables = []string{"lead-report", "lead-web"}

func main() {
	target := flag.String("target", "all", "Build target")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	startTime := time.Now()

	switch *target {
	case "all":
		for _, name := range executables {
			build(name, *verbose)
		}
	case "lead-report", "lead-web":
		build(*target, *verbose)
	case "test":
		runTests(*verbose)
	case "clean":
		if err := os.RemoveAll(distDir); err != nil {
			fail("Failed to clean %s: %v", distDir, err)
		}
	default:
		fmt.Println("Targets: all, lead-report, lead-web, test, clean")
		os.Exit(1)
	}

	fmt.Printf("[OK] Build completed in %s\n", time.Since(startTime).Round(time.Millisecond))
}

func build(name string, verbose bool) {
	fmt.Printf("[INFO] Building %s...\n", name)

	ldflags := fmt.Sprintf("-s -w -X %s/pkg/contracts.BuildTime=%s -X %s/pkg/contracts.GitCommit=%s",
		module, time.Now().UTC().Format(time.RFC3339), module, gitCommit())

	args := []string{"build", "-ldflags", ldflags, "-o", filepath.Join(distDir, name), "./cmd/" + name}
	if verbose {
		args = append([]string{"build", "-v"}, args[1:]...)
		fmt.Printf("go %s\n", strings.Join(args, " "))
	}

	run(verbose, "go", args...)

	if info, err := os.Stat(filepath.Join(distDir, name)); err == nil {
		fmt.Printf("[OK] Built %s (%.1f MB)\n", name, float64(info.Size())/1024/1024)
	}
}

func runTests(verbose bool) {
	args := []string{"test", "-race"}
	if verbose {
		args = append(args, "-v")
	}
	run(true, "go", append(args, "./...")...)
}

func run(stream bool, name string, args ...string) {
	cmd := exec.Command(name, args...)
	if stream {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fail("%s %s failed: %v", name, args[0], err)
	}
}

func gitCommit() string {
	out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+format+"\n", args...)
	os.Exit(1)
}
