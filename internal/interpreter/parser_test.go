package interpreter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"toyrobot/internal/robot"
)

func runScript(t *testing.T, src string) (*robot.Robot, string, error) {
	t.Helper()
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	r := robot.NewRobot()
	var out bytes.Buffer
	execErr := prog.Exec(&Context{Robot: r, Out: &out})
	return r, out.String(), execErr
}

func TestExecScript(t *testing.T) {
	r, out, err := runScript(t, `
		place 0 0 north;
		run "LAAR";
		report;
	`)
	if err != nil {
		t.Fatal(err)
	}
	pos, _ := r.Coordinates()
	if pos.X != -2 || pos.Y != 0 || r.Bearing() != robot.North {
		t.Errorf("final state (%d,%d,%s), want (-2,0,north)", pos.X, pos.Y, r.Bearing())
	}
	if out != "-2,0,north\n" {
		t.Errorf("report output %q, want %q", out, "-2,0,north\n")
	}
}

func TestExecSingleCommands(t *testing.T) {
	r, _, err := runScript(t, `place 1 1 east; left; advance; right; advance; advance;`)
	if err != nil {
		t.Fatal(err)
	}
	// east, left to north, up one, right back east, two steps east
	pos, _ := r.Coordinates()
	if pos.X != 3 || pos.Y != 2 || r.Bearing() != robot.East {
		t.Errorf("final state (%d,%d,%s), want (3,2,east)", pos.X, pos.Y, r.Bearing())
	}
}

func TestExecFace(t *testing.T) {
	r, _, err := runScript(t, `place 0 0 north; face south; advance;`)
	if err != nil {
		t.Fatal(err)
	}
	pos, _ := r.Coordinates()
	if pos.X != 0 || pos.Y != -1 || r.Bearing() != robot.South {
		t.Errorf("final state (%d,%d,%s), want (0,-1,south)", pos.X, pos.Y, r.Bearing())
	}
}

func TestExecNegativeCoordinates(t *testing.T) {
	r, _, err := runScript(t, `place -3 -4 west;`)
	if err != nil {
		t.Fatal(err)
	}
	pos, _ := r.Coordinates()
	if pos.X != -3 || pos.Y != -4 {
		t.Errorf("position (%d,%d), want (-3,-4)", pos.X, pos.Y)
	}
}

func TestExecErrorsPropagate(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"bad direction", `place 0 0 nowhere;`},
		{"bad command string", `place 0 0 north; run "XYZ";`},
		{"empty command string", `place 0 0 north; run "";`},
		{"unplaced advance", `advance;`},
	}

	for _, tt := range tests {
		_, _, err := runScript(t, tt.script)
		if !errors.Is(err, robot.ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", tt.name, err)
		}
	}
}

func TestExecStopsAtFirstError(t *testing.T) {
	r, _, err := runScript(t, `place 0 0 north; run "XYZ"; advance;`)
	if err == nil {
		t.Fatal("expected error")
	}
	// the trailing advance must not have run
	pos, _ := r.Coordinates()
	if pos.X != 0 || pos.Y != 0 {
		t.Errorf("position (%d,%d), want (0,0)", pos.X, pos.Y)
	}
}

func TestReportUnplaced(t *testing.T) {
	_, out, err := runScript(t, `report;`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "not placed") {
		t.Errorf("report output %q, want a not-placed notice", out)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		`place 0 0;`,
		`run LAAR;`,
		`jump;`,
		`place 0 0 north`,
	}

	for _, src := range tests {
		if _, err := Parse(src); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", src)
		}
	}
}
