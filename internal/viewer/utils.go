package viewer

import (
	"fmt"
	"math"
)

// fit returns the uniform scale and offsets that center a src-sized image
// inside dst without cropping. Images are never scaled up past 1:1.
func fit(srcW, srcH, dstW, dstH int) (scale, dx, dy float64) {
	if srcW <= 0 || srcH <= 0 {
		return 1, 0, 0
	}
	scale = math.Min(float64(dstW)/float64(srcW), float64(dstH)/float64(srcH))
	scale = clamp(scale, 0, 1)
	dx = (float64(dstW) - float64(srcW)*scale) / 2
	dy = (float64(dstH) - float64(srcH)*scale) / 2
	return scale, dx, dy
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// statusLine formats the help text shown above the figure.
func statusLine(n, total int, title, saved string, err error) string {
	status := fmt.Sprintf("[%d/%d] %s | S: save PNG", n, total, title)
	if n < total {
		status += " | Enter/Space: next figure | Esc/Q: next"
	} else {
		status += " | Enter/Space/Esc/Q: quit"
	}
	if saved != "" {
		status += " | Saved " + saved
	}
	if err != nil {
		status += " | Error: " + err.Error()
	}
	return status
}
