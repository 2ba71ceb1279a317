package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/seedlinghq/seedling-engine/internal/replay"
	"github.com/seedlinghq/seedling-engine/internal/scoring"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to one fixture JSON")
	dir := flag.String("dir", "", "replay every *.json fixture in a directory")
	flag.Parse()

	if (*fixturePath == "" && *dir == "") || (*fixturePath != "" && *dir != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		fmt.Fprintln(os.Stderr, "       replay --dir path/to/fixtures")
		os.Exit(2)
	}

	paths, err := collectPaths(*fixturePath, *dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	os.Exit(run(paths))
}

// #endregion main

// #region run

func collectPaths(fixturePath, dir string) ([]string, error) {
	if fixturePath != "" {
		return []string{fixturePath}, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".json") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no *.json fixtures in %s", dir)
	}
	sort.Strings(paths)
	return paths, nil
}

func run(paths []string) int {
	fmt.Printf("%-36s| %-8s| %-14s| %-10s| %s\n", "Fixture", "Gate", "Primary", "Style", "Match")
	fmt.Println(strings.Repeat("-", 84))

	var results []replay.Result
	for _, path := range paths {
		f, err := replay.LoadFixture(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load %s: %v\n", path, err)
			return 2
		}
		res, err := replay.Replay(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "replay %s: %v\n", path, err)
			return 2
		}
		results = append(results, res)
		printRow(filepath.Base(path), res)
	}

	s := replay.Summarize(results)
	fmt.Printf("\nSummary: %d total, %d pass, %d fail\n", s.Total, s.Passed, s.Failed)
	if s.Failed > 0 {
		return 1
	}
	return 0
}

func printRow(name string, res replay.Result) {
	match := "OK"
	if !res.Passed {
		match = "DIFF"
	}
	style := "—"
	if res.Scored.Bank == "seedling" {
		style = styleOf(res)
	}
	fmt.Printf("%-36s| %-8s| %-14s| %-10s| %s\n",
		name, res.GateDecision.Action, res.Scored.Primary, style, match)

	for _, m := range res.Mismatches {
		fmt.Printf("    %s\n", m)
	}
}

func styleOf(res replay.Result) string {
	primary, _ := scoring.SelectStyles(res.Scored.Dims())
	return string(primary)
}

// #endregion run
