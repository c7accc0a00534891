package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smomen/moodlamp/protocol"
)

// testClock is a settable millisecond source.
type testClock struct {
	ms uint32
}

func (c *testClock) now() uint32 { return c.ms }

func twoFrameRecord(a, b [3]uint8, total uint32) protocol.Record {
	var rec protocol.Record
	rec.FrameCount = 2
	rec.Frames[0] = protocol.Frame{Color: a, Time: 0}
	rec.Frames[1] = protocol.Frame{Color: b, Time: total}
	rec.TotalTime = total
	return rec
}

func TestSingleFrameIsConstant(t *testing.T) {
	clk := &testClock{}
	e := New(clk.now)
	e.Install(SolidColor(12, 34, 56))

	for _, ms := range []uint32{0, 1, 500, 99999, 1 << 30} {
		clk.ms = ms
		r, g, b := e.Evaluate()
		assert.Equal(t, [3]uint8{12, 34, 56}, [3]uint8{r, g, b}, "at %dms", ms)
	}
}

func TestInterpolationEndpointsAndMidpoint(t *testing.T) {
	clk := &testClock{}
	e := New(clk.now)
	e.Install(twoFrameRecord([3]uint8{0, 100, 200}, [3]uint8{100, 0, 200}, 1000))

	r, g, b := e.Evaluate()
	assert.Equal(t, [3]uint8{0, 100, 200}, [3]uint8{r, g, b}, "cycle start")

	clk.ms = 500
	r, g, b = e.Evaluate()
	assert.Equal(t, [3]uint8{50, 50, 200}, [3]uint8{r, g, b}, "midpoint")

	clk.ms = 999
	r, g, b = e.Evaluate()
	assert.Equal(t, [3]uint8{99, 1, 200}, [3]uint8{r, g, b}, "just before wrap")
}

func TestInterpolationStaysBounded(t *testing.T) {
	clk := &testClock{}
	e := New(clk.now)
	lo, hi := [3]uint8{10, 200, 0}, [3]uint8{240, 20, 255}
	e.Install(twoFrameRecord(lo, hi, 777))

	for ms := uint32(0); ms < 777; ms += 13 {
		clk.ms = ms
		r, g, b := e.Evaluate()
		got := [3]uint8{r, g, b}
		for c := 0; c < 3; c++ {
			min, max := lo[c], hi[c]
			if min > max {
				min, max = max, min
			}
			assert.GreaterOrEqual(t, got[c], min, "channel %d at %dms", c, ms)
			assert.LessOrEqual(t, got[c], max, "channel %d at %dms", c, ms)
		}
	}
}

func TestLoopPeriodicity(t *testing.T) {
	clk := &testClock{ms: 5000}
	e := New(clk.now)
	e.Install(BreatheColor(255, 128, 64, 3000))

	clk.ms = 5000 + 500
	r0, g0, b0 := e.Evaluate()
	for k := uint32(1); k <= 4; k++ {
		clk.ms = 5000 + 500 + k*3000
		r, g, b := e.Evaluate()
		assert.Equal(t, [3]uint8{r0, g0, b0}, [3]uint8{r, g, b}, "cycle %d", k)
	}
}

func TestWrapBeforeFirstKeyframe(t *testing.T) {
	// Neither keyframe sits at time zero, so early in the cycle the left
	// bracket is the final frame of the previous cycle.
	var rec protocol.Record
	rec.FrameCount = 2
	rec.Frames[0] = protocol.Frame{Color: [3]uint8{100, 0, 0}, Time: 200}
	rec.Frames[1] = protocol.Frame{Color: [3]uint8{0, 100, 0}, Time: 400}
	rec.TotalTime = 400

	clk := &testClock{}
	e := New(clk.now)
	e.Install(rec)

	// elapsed=100 is halfway from the wrapped frame 1 (at -0... i.e. 0)
	// to frame 0 at 200.
	clk.ms = 100
	r, g, b := e.Evaluate()
	assert.Equal(t, [3]uint8{50, 50, 0}, [3]uint8{r, g, b})
}

func TestInstallRestartsPhase(t *testing.T) {
	clk := &testClock{}
	e := New(clk.now)
	e.Install(twoFrameRecord([3]uint8{0, 0, 0}, [3]uint8{200, 200, 200}, 1000))

	clk.ms = 900
	r, _, _ := e.Evaluate()
	assert.Equal(t, uint8(180), r)

	// Reinstalling at 900ms resets the reference: playback starts over.
	e.Install(twoFrameRecord([3]uint8{0, 0, 0}, [3]uint8{200, 200, 200}, 1000))
	r, _, _ = e.Evaluate()
	assert.Equal(t, uint8(0), r)
}

func TestZeroTotalTimeIsConstant(t *testing.T) {
	var rec protocol.Record
	rec.FrameCount = 2
	rec.Frames[0] = protocol.Frame{Color: [3]uint8{7, 8, 9}, Time: 0}
	rec.Frames[1] = protocol.Frame{Color: [3]uint8{1, 2, 3}, Time: 0}

	clk := &testClock{}
	e := New(clk.now)
	e.Install(rec)

	clk.ms = 12345
	r, g, b := e.Evaluate()
	assert.Equal(t, [3]uint8{7, 8, 9}, [3]uint8{r, g, b})
}

func TestRunFeedsSink(t *testing.T) {
	clk := &testClock{}
	e := New(clk.now)
	e.Install(SolidColor(1, 2, 3))

	var got [3]uint8
	e.Run(func(r, g, b uint8) { got = [3]uint8{r, g, b} })
	assert.Equal(t, [3]uint8{1, 2, 3}, got)
	assert.Equal(t, SolidColor(1, 2, 3), e.Record())
}
