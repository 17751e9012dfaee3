package interpreter

import (
	"io"

	"toyrobot/internal/robot"
)

// Context stores the robot a script runs against and the report sink

type Context struct {
	Robot *robot.Robot
	Out   io.Writer
}
