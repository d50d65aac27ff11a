package obj

import "testing"

func TestInputReset(t *testing.T) {
	in := &Input{MoveX: -1, Jump: true, Shoot: true, Restart: true, Quit: true}
	in.Reset()
	if *in != (Input{}) {
		t.Fatalf("reset left %+v", *in)
	}

	var none *Input
	none.Reset()
}
