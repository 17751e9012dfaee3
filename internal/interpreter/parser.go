package interpreter

import (
	"github.com/alecthomas/participle/v2"
)

type Script struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Place *Place `parser:"@@ ';'"`
	Face  *Face  `parser:"| @@ ';'"`
	Run   *Run   `parser:"| @@ ';'"`
	Cmd   *Cmd   `parser:"| @@ ';'"`
}

type Place struct {
	X         int    `parser:"'place' @('-'? Int)"`
	Y         int    `parser:"@('-'? Int)"`
	Direction string `parser:"@Ident"`
}

type Face struct {
	Direction string `parser:"'face' @Ident"`
}

type Run struct {
	Commands string `parser:"'run' @String"`
}

type Cmd struct {
	Name string `parser:"@('advance'|'left'|'right'|'report')"`
}

var parser = participle.MustBuild[Script](participle.Unquote("String"))

func Parse(data string) (*Script, error) {
	return parser.ParseString("input", data)
}

func (s *Script) Exec(ctx *Context) error {
	for _, stmt := range s.Statements {
		if err := stmt.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) Exec(ctx *Context) error {
	switch {
	case s.Place != nil:
		return ctx.Robot.Place(s.Place.X, s.Place.Y, s.Place.Direction)
	case s.Face != nil:
		return ctx.Robot.Orient(s.Face.Direction)
	case s.Run != nil:
		return ctx.Robot.Evaluate(s.Run.Commands)
	case s.Cmd != nil:
		switch s.Cmd.Name {
		case "advance":
			return ctx.Robot.Advance()
		case "left":
			return ctx.Robot.TurnLeft()
		case "right":
			return ctx.Robot.TurnRight()
		case "report":
			return ctx.Report()
		}
	}
	return nil
}
