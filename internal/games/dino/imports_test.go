package dino

import (
	"go/build"
	"strings"
	"testing"
)

// The simulation must build without any audio or graphics backend.
func TestSimulationImportsStayPure(t *testing.T) {
	banned := []string{
		"github.com/gopxl/beep",
		"github.com/hajimehoshi/ebiten",
		"github.com/charmbracelet/",
		"github.com/vovakirdan/dino-runner/internal/audio/device",
		"github.com/vovakirdan/dino-runner/internal/platform",
	}

	for _, dir := range []string{".", "../../audio", "../../core", "../../config"} {
		pkg, err := build.ImportDir(dir, 0)
		if err != nil {
			t.Fatalf("ImportDir(%s): %v", dir, err)
		}
		for _, imp := range pkg.Imports {
			for _, b := range banned {
				if strings.HasPrefix(imp, b) {
					t.Errorf("%s imports %s", pkg.ImportPath, imp)
				}
			}
		}
	}
}
