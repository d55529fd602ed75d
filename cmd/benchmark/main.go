package main

import (
	"flag"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/olgasafonova/ytunnus-mcp-server/internal/finland"
	"github.com/olgasafonova/ytunnus-mcp-server/internal/selftest"
)

// measure validates every input n times and returns the average time per call
func measure(v finland.Specification, inputs []string, n int) time.Duration {
	start := time.Now()
	for i := 0; i < n; i++ {
		for _, in := range inputs {
			_ = v.Validate(in)
		}
	}
	return time.Since(start) / time.Duration(n*len(inputs))
}

// measurePaths compares the cost of the valid path against each way of failing
func measurePaths(v finland.Specification, n int) {
	fmt.Println("=== Validation Paths ===")
	fmt.Println()

	paths := []struct {
		label  string
		inputs []string
	}{
		{"1. Valid (full checksum)", []string{"2471384-9", "1572860-0"}},
		{"2. Checksum mismatch", []string{"2471385-9", "2471384-8"}},
		{"3. Remainder one", []string{"1001000-9"}},
		{"4. Wrong length", []string{"12", "3232324713849XX"}},
		{"5. Invalid characters", []string{"2471A84-9", "a4b1C8D-E"}},
	}

	for _, p := range paths {
		fmt.Printf("%s:\n", p.label)
		fmt.Printf("   %v per validation\n", measure(v, p.inputs, n))
	}
	fmt.Println()
}

// measureSelfTest times full runs of the built-in case table
func measureSelfTest(v finland.Specification, n int) {
	fmt.Println("=== Self-Test Table ===")
	fmt.Println()

	start := time.Now()
	var report selftest.Report
	for i := 0; i < n; i++ {
		report = selftest.Run(v, nil)
	}
	elapsed := time.Since(start)

	fmt.Printf("6. %d runs of %d cases: %v\n", n, report.Total(), elapsed)
	fmt.Printf("   Per run: %v\n", elapsed/time.Duration(n))
	fmt.Printf("   Last run: %d passed, %d failed\n", report.Passed, report.Failed)
	fmt.Println()
}

// measureCheckDigit computes the control mark over the whole prefix space
func measureCheckDigit() {
	fmt.Println("=== Check Digit ===")
	fmt.Println()

	const prefixes = 10_000_000
	noDigit := 0
	start := time.Now()
	for n := 0; n < prefixes; n++ {
		if _, ok := finland.CheckDigit(fmt.Sprintf("%07d", n)); !ok {
			noDigit++
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("8. %d prefixes: %v\n", prefixes, elapsed)
	fmt.Printf("   Per prefix: %v\n", elapsed/prefixes)
	fmt.Printf("   Without a check digit (remainder one): %d (%.1f%%)\n",
		noDigit, float64(noDigit)/prefixes*100)
	fmt.Println()
}

// measureConcurrent shares one validator across goroutines
func measureConcurrent(v finland.Specification, n, workers int) {
	fmt.Println("=== Concurrent Throughput ===")
	fmt.Println()

	inputs := make([]string, 0, len(selftest.DefaultCases))
	for _, c := range selftest.DefaultCases {
		inputs = append(inputs, c.Input)
	}

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			measure(v, inputs, n)
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	total := n * len(inputs) * workers
	fmt.Printf("7. %d validations on %d goroutines: %v\n", total, workers, elapsed)
	fmt.Printf("   Throughput: %.0f validations/s\n", float64(total)/elapsed.Seconds())
	fmt.Println()
}

func main() {
	n := flag.Int("n", 100000, "iterations per measurement")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "goroutines for the concurrent measurement")
	flag.Parse()

	if *n <= 0 || *workers <= 0 {
		fmt.Println("-n and -workers must be positive")
		return
	}

	fmt.Println("Finnish Business ID Validator - Performance Measurements")
	fmt.Println("========================================================")
	fmt.Println()

	v := finland.New()
	measurePaths(v, *n)
	measureSelfTest(v, *n/100+1)
	measureConcurrent(v, *n/10+1, *workers)
	measureCheckDigit()
}
