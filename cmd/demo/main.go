package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/delaneyj/anchorparty/anchors"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:   "demo",
		Usage:  "Walk small anchor graphs through the engine",
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"scene", "step", "value"})

	arithmeticScene(table)
	greetingScene(table)
	sharedWorkScene(table)

	table.Render()
	return nil
}

func arithmeticScene(table *tablewriter.Table) {
	engine := anchors.NewEngine()

	a := anchors.Create(2)
	b := anchors.Create(3)
	c := anchors.Map2(a, b, func(a, b int) int { return a + b })

	engine.Observe(c)
	table.Append([]string{"arithmetic", "c = a + b", fmt.Sprint(anchors.Get(engine, c))})

	anchors.Set(engine, a, 10)
	table.Append([]string{"arithmetic", "set a = 10", fmt.Sprint(anchors.Get(engine, c))})

	d := anchors.Map(c, func(c int) int { return c * 3 })
	engine.Observe(d)
	table.Append([]string{"arithmetic", "d = c * 3", fmt.Sprint(anchors.Get(engine, d))})
}

func greetingScene(table *tablewriter.Table) {
	engine := anchors.NewEngine()

	username := anchors.Create("John")
	greeting := anchors.Map(username, func(name string) string {
		return "Hello, " + name
	})

	engine.Observe(greeting)
	table.Append([]string{"greeting", "greet", anchors.Get(engine, greeting)})

	anchors.Set(engine, username, "Samuel")
	table.Append([]string{"greeting", "set username", anchors.Get(engine, greeting)})
}

func sharedWorkScene(table *tablewriter.Table) {
	engine := anchors.NewEngine()

	w := anchors.Create(10)
	x := anchors.Create(4)

	additions := 0
	y := anchors.Map2(w, x, func(w, x int) int {
		additions++
		return w + x
	})

	z := anchors.Create(5)
	result := anchors.Map2(y, z, func(y, z int) int { return y + z })

	engine.Observe(result)
	table.Append([]string{"shared work", "r = (w + x) + z", fmt.Sprint(anchors.Get(engine, result))})

	// only z changes, so the w + x sum is reused
	anchors.Set(engine, z, 9)
	table.Append([]string{"shared work", "set z = 9", fmt.Sprint(anchors.Get(engine, result))})
	table.Append([]string{"shared work", "additions ran", fmt.Sprint(additions)})
}
