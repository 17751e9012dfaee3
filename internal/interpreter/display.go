package interpreter

import "fmt"

// Report writes the robot state to the context sink as "x,y,facing".
func (c *Context) Report() error {
	pos, ok := c.Robot.Coordinates()
	if !ok {
		_, err := fmt.Fprintln(c.Out, "robot not placed")
		return err
	}
	_, err := fmt.Fprintf(c.Out, "%d,%d,%s\n", pos.X, pos.Y, c.Robot.Bearing())
	return err
}
