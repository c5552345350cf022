package favicon

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"d2dfavicon/src/common"
	"d2dfavicon/src/config"
)

// Generator turns the configured logo into the favicon set
type Generator struct {
	logoPath  string
	outputDir string
	out       io.Writer
}

// NewGenerator creates a generator that reports progress to out
func NewGenerator(cfg *config.Config, out io.Writer) *Generator {
	if out == nil {
		out = io.Discard
	}
	return &Generator{
		logoPath:  cfg.LogoPath,
		outputDir: cfg.OutputDir,
		out:       out,
	}
}

// LogoPath returns the source image path
func (g *Generator) LogoPath() string {
	return g.logoPath
}

// OutputDir returns the directory favicons are written to
func (g *Generator) OutputDir() string {
	return g.outputDir
}

// Convert runs one conversion and reports whether every artifact was written.
// Errors and panics never escape; they are printed and turned into false.
func (g *Generator) Convert() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(g.out, "Error converting favicon: %v\n", r)
			ok = false
		}
	}()

	if _, err := g.Run(); err != nil {
		if errors.Is(err, common.ErrSourceNotFound) {
			fmt.Fprintf(g.out, "Error: %s not found!\n", g.logoPath)
		} else {
			fmt.Fprintf(g.out, "Error converting favicon: %v\n", err)
		}
		return false
	}

	fmt.Fprintln(g.out, "\n✓ All favicon formats created successfully!")
	fmt.Fprintf(g.out, "\nFavicons are now available in: %s/\n", g.outputDir)
	return true
}

// Run loads, normalizes, resizes and saves. It stops at the first failure and
// returns the artifacts written before it; those are left on disk.
func (g *Generator) Run() ([]common.Artifact, error) {
	src, err := common.LoadImage(g.logoPath)
	if err != nil {
		return nil, err
	}
	img := common.Normalize(src)

	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	resized := make(map[int]*image.NRGBA, len(common.PNGSizes))
	for _, size := range common.PNGSizes {
		resized[size] = common.ResizeSquare(img, size)
	}

	written := make([]common.Artifact, 0, len(common.PNGSizes)+1)
	for _, artifact := range common.Artifacts(g.outputDir) {
		if err := save(artifact, resized[artifact.Size]); err != nil {
			return written, err
		}
		fmt.Fprintf(g.out, "✓ Created: %s\n", artifact.Path)
		written = append(written, artifact)
	}

	return written, nil
}

func save(artifact common.Artifact, img *image.NRGBA) error {
	switch artifact.Format {
	case common.FormatPNG:
		return common.SavePNG(img, artifact.Path)
	case common.FormatICO:
		return common.SaveICO(img, artifact.Path)
	default:
		return fmt.Errorf("unsupported format %v for %s", artifact.Format, artifact.Path)
	}
}
