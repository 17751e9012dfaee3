package main

import (
	"fmt"
	"log"
	"os"

	"toyrobot/internal/interpreter"
	"toyrobot/internal/robot"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatalf("usage: %s <placement file> <script file>", os.Args[0])
	}

	x, y, dir, err := interpreter.LoadPlacement(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	// load the movement script from disk
	script, err := os.ReadFile(os.Args[2])
	if err != nil {
		log.Fatal(err)
	}

	prog, err := interpreter.Parse(string(script))
	if err != nil {
		log.Fatal(err)
	}

	r := robot.NewRobot()
	if err := r.Place(x, y, dir); err != nil {
		log.Fatal(err)
	}

	ctx := &interpreter.Context{Robot: r, Out: os.Stdout}
	if err := prog.Exec(ctx); err != nil {
		log.Fatal(err)
	}

	pos, _ := r.Coordinates()
	fmt.Printf("Robot final position: (%d,%d) facing %s\n", pos.X, pos.Y, r.Bearing())
}
