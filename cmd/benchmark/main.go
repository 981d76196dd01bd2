package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/anchorparty/anchors"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")
	benchmarkPropagate(false)

	benchmarkPropagate(true)
}

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100}
	iters = 100
)

func addOne(oldValue int) int {
	return oldValue + 1
}

func benchmarkPropagate(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Anchorparty")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "anchors", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			engine := anchors.NewEngine()
			src := anchors.Create(1)
			anchorCount := int64(1)

			terminals := make([]*anchors.Anchor[int], 0, w)
			for i := 0; i < w; i++ {
				last := src
				for j := 0; j < h; j++ {
					last = anchors.Map(last, addOne)
					anchorCount++
				}
				terminals = append(terminals, last)
				engine.Observe(last)
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				anchors.Set(engine, src, i+2)
				for _, terminal := range terminals {
					anchors.Get(engine, terminal)
				}
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					humanize.Comma(anchorCount),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
