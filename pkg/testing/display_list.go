package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/holdingbutton/pkg/graphics"
)

// DrawOp is a serialized canvas drawing operation.
type DrawOp struct {
	Op     string
	Params map[string]any
}

// RecordingCanvas implements graphics.Canvas and records every operation as
// a DrawOp for assertions.
type RecordingCanvas struct {
	ops  []DrawOp
	size graphics.Size
}

// NewRecordingCanvas creates a recording canvas of the given size.
func NewRecordingCanvas(width, height float64) *RecordingCanvas {
	return &RecordingCanvas{size: graphics.Size{Width: width, Height: height}}
}

func (c *RecordingCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	c.ops = append(c.ops, DrawOp{
		Op: "drawCircle",
		Params: map[string]any{
			"cx":     round2(center.X),
			"cy":     round2(center.Y),
			"radius": round2(radius),
			"color":  serializeColor(paint.Color),
		},
	})
}

func (c *RecordingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	params := map[string]any{
		"left":   round2(rect.Left),
		"top":    round2(rect.Top),
		"right":  round2(rect.Right),
		"bottom": round2(rect.Bottom),
		"color":  serializeColor(paint.Color),
	}
	if paint.Shader != nil {
		m := paint.Shader.Matrix
		params["shader"] = map[string]any{
			"scaleX": round2(m.XX),
			"scaleY": round2(m.YY),
			"tx":     round2(m.TX),
			"ty":     round2(m.TY),
		}
	}
	if paint.Filter != nil {
		params["filter"] = map[string]any{
			"color": serializeColor(paint.Filter.Color),
			"mode":  paint.Filter.Mode.String(),
		}
	}
	c.ops = append(c.ops, DrawOp{Op: "drawRect", Params: params})
}

func (c *RecordingCanvas) Size() graphics.Size {
	return c.size
}

// Ops returns the recorded operations in draw order.
func (c *RecordingCanvas) Ops() []DrawOp {
	return c.ops
}

// Reset discards all recorded operations, keeping the canvas size.
func (c *RecordingCanvas) Reset() {
	c.ops = nil
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
