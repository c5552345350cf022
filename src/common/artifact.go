package common

import (
	"fmt"
	"path/filepath"
)

// Format is the container an artifact is written in
type Format int

const (
	FormatPNG Format = iota
	FormatICO
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatICO:
		return "ICO"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// IconSize is the resample the ICO is written from
const IconSize = 32

// PNGSizes are the square PNG favicons generated on every run
var PNGSizes = []int{16, IconSize, 64}

// Artifact is one generated favicon file
type Artifact struct {
	Size   int
	Format Format
	Path   string
}

// PNGPath returns the path of the size×size PNG favicon in outputDir
func PNGPath(outputDir string, size int) string {
	return filepath.Join(outputDir, fmt.Sprintf("favicon-%dx%d.png", size, size))
}

// ICOPath returns the path of favicon.ico in outputDir
func ICOPath(outputDir string) string {
	return filepath.Join(outputDir, "favicon.ico")
}

// Artifacts lists every file a run writes into outputDir, in write order
func Artifacts(outputDir string) []Artifact {
	artifacts := make([]Artifact, 0, len(PNGSizes)+1)
	for _, size := range PNGSizes {
		artifacts = append(artifacts, Artifact{
			Size:   size,
			Format: FormatPNG,
			Path:   PNGPath(outputDir, size),
		})
	}
	artifacts = append(artifacts, Artifact{
		Size:   IconSize,
		Format: FormatICO,
		Path:   ICOPath(outputDir),
	})
	return artifacts
}
