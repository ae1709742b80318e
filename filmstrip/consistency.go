package filmstrip

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// ScriptSupervisor validates that two takes of the same scene look the same.
// Because the engine is deterministic, rendering the same cue sheet at the
// same times must reproduce frames exactly; the supervisor turns that
// guarantee into a checkable regression gate.
type ScriptSupervisor struct {
	tolerance float64 // Fraction of pixels allowed to differ
}

// NewScriptSupervisor creates a supervisor. Zero tolerance demands
// pixel-identical takes.
func NewScriptSupervisor(tolerance float64) *ScriptSupervisor {
	return &ScriptSupervisor{tolerance: tolerance}
}

// Compare returns the fraction of pixels that differ between two frames.
// Frames of different dimensions count as fully different.
func (ss *ScriptSupervisor) Compare(a, b image.Image) float64 {
	ba, bb := a.Bounds(), b.Bounds()
	if ba != bb {
		return 1.0
	}

	totalPixels := (ba.Max.X - ba.Min.X) * (ba.Max.Y - ba.Min.Y)
	if totalPixels == 0 {
		return 0
	}

	differentPixels := 0
	for y := ba.Min.Y; y < ba.Max.Y; y++ {
		for x := ba.Min.X; x < ba.Max.X; x++ {
			if a.At(x, y) != b.At(x, y) {
				differentPixels++
			}
		}
	}

	return float64(differentPixels) / float64(totalPixels)
}

// ValidateTake compares a captured frame on disk against its baseline.
func (ss *ScriptSupervisor) ValidateTake(baselinePath, currentPath string) error {
	baseline, err := loadPNG(baselinePath)
	if err != nil {
		return fmt.Errorf("filmstrip: load baseline: %w", err)
	}
	current, err := loadPNG(currentPath)
	if err != nil {
		return fmt.Errorf("filmstrip: load current: %w", err)
	}

	if diff := ss.Compare(baseline, current); diff > ss.tolerance {
		return fmt.Errorf("filmstrip: takes differ by %.2f%% (tolerance %.2f%%)",
			diff*100, ss.tolerance*100)
	}
	return nil
}

func loadPNG(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return png.Decode(file)
}
