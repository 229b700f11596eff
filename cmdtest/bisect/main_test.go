package bisect

import (
	"testing"

	"github.com/ordkit/bisect/cmd"
	"github.com/ordkit/bisect/cmdtest"
)

func TestCLI(t *testing.T) {
	ts, err := cmdtest.Read("testdata")
	if err != nil {
		t.Fatal(err)
	}
	ts.Register("bisect", cmd.Execute)
	ts.Run(t)
}
