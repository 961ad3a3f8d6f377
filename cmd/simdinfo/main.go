// Command simdinfo prints the detected CPU vector capabilities and the
// bucket layouts the interleaved buffer derives from them.
//
// Usage:
//
//	simdinfo [flags] [channel-count ...]
//
// Without arguments it prints the capability summary and the layouts for
// channel counts 1 through 16.
//
// Examples:
//
//	simdinfo
//	simdinfo 10 12 14
//	simdinfo -generic 10
//	simdinfo -max 64
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-interleave/interleaved"
	"github.com/cwbudde/algo-interleave/internal/cpu"
	"github.com/cwbudde/algo-interleave/simd"
)

func main() {
	generic := flag.Bool("generic", false, "ignore detected SIMD features and use the baseline widths")
	maxChannels := flag.Int("max", 16, "highest channel count to print when no counts are given")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: simdinfo [flags] [channel-count ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints CPU vector capabilities and derived channel bucket layouts.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  simdinfo\n")
		fmt.Fprintf(os.Stderr, "  simdinfo 10 12 14\n")
		fmt.Fprintf(os.Stderr, "  simdinfo -generic 10\n")
	}
	flag.Parse()

	if *generic {
		f := cpu.DetectFeatures()
		f.ForceGeneric = true
		cpu.SetForcedFeatures(f)
	}

	counts, err := parseCounts(flag.Args(), *maxChannels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printFeatures()
	fmt.Println()
	printWidths()
	fmt.Println()
	printLayouts[float32]("float32", counts)
	fmt.Println()
	printLayouts[float64]("float64", counts)
}

func parseCounts(args []string, maxChannels int) ([]int, error) {
	if len(args) == 0 {
		if maxChannels < 1 {
			return nil, fmt.Errorf("-max must be at least 1")
		}
		counts := make([]int, maxChannels)
		for i := range counts {
			counts[i] = i + 1
		}
		return counts, nil
	}
	counts := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid channel count %q", a)
		}
		counts = append(counts, n)
	}
	return counts, nil
}

func printFeatures() {
	f := cpu.DetectFeatures()
	fmt.Printf("Architecture: %s\n", f.Architecture)
	fmt.Printf("SSE2: %v  AVX: %v  AVX2: %v  AVX-512: %v  NEON: %v\n",
		f.HasSSE2, f.HasAVX, f.HasAVX2, f.HasAVX512, f.HasNEON)
	if f.ForceGeneric {
		fmt.Println("Generic fallback forced; only baseline widths are used.")
	}
}

func printWidths() {
	fmt.Printf("float32 widths: %v (widest %d lanes)\n",
		simd.AvailableWidths[float32](), simd.WidestWidth[float32]().Lanes())
	fmt.Printf("float64 widths: %v (widest %d lanes)\n",
		simd.AvailableWidths[float64](), simd.WidestWidth[float64]().Lanes())
}

func printLayouts[T simd.Float](label string, counts []int) {
	fmt.Printf("%s bucket layouts:\n", label)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Channels\tBuckets\tLanes (used/width)\tWasted\n")
	for _, n := range counts {
		b := interleaved.New[T](n, 0)
		total := 0
		desc := ""
		for i := 0; i < b.NumBuckets(); i++ {
			w := b.BucketWidth(i).Lanes()
			total += w
			if i > 0 {
				desc += " + "
			}
			desc += fmt.Sprintf("%d/%d", b.UsedLanes(i), w)
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\n", n, b.NumBuckets(), desc, total-n)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
