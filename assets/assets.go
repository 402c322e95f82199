package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/sync/singleflight"

	// Sheets may also be shipped as webp or bmp.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// ErrAssetRoot is returned when the asset filesystem cannot be read at all.
var ErrAssetRoot = errors.New("asset root unreadable")

// Handle refers to a sheet registered with a SheetLoader. The zero Handle is
// never issued and never resolves.
type Handle int

// Grid describes how a sheet is cut into equally sized cells, row-major.
type Grid struct {
	CellWidth  int
	CellHeight int
	Columns    int
	Rows       int
}

// Frames returns the number of cells in the grid.
func (g Grid) Frames() int {
	return g.Columns * g.Rows
}

// Cell returns the source rectangle of frame i.
func (g Grid) Cell(i int) image.Rectangle {
	x := (i % g.Columns) * g.CellWidth
	y := (i / g.Columns) * g.CellHeight
	return image.Rect(x, y, x+g.CellWidth, y+g.CellHeight)
}

// Atlas is a decoded sheet together with its grid.
type Atlas struct {
	Sheet  *ebiten.Image
	Grid   Grid
	frames []*ebiten.Image // Pre-calculated subimages keyed by frame index
}

func newAtlas(sheet *ebiten.Image, grid Grid) *Atlas {
	a := &Atlas{
		Sheet:  sheet,
		Grid:   grid,
		frames: make([]*ebiten.Image, grid.Frames()),
	}
	for i := range a.frames {
		a.frames[i] = sheet.SubImage(grid.Cell(i)).(*ebiten.Image)
	}
	return a
}

// Frame returns the subimage for frame i, or nil when i is out of range.
func (a *Atlas) Frame(i int) *ebiten.Image {
	if i < 0 || i >= len(a.frames) {
		return nil
	}
	return a.frames[i]
}

type sheetEntry struct {
	path  string
	grid  Grid
	atlas *Atlas // nil while pending
}

// SheetLoader decodes sprite sheets from a filesystem and hands out handles.
// It is safe for concurrent use.
type SheetLoader struct {
	fsys   fs.FS
	logger *log.Logger

	decodes singleflight.Group

	mu      sync.RWMutex
	entries []sheetEntry
	cache   map[string]*ebiten.Image
}

// NewSheetLoader returns a loader reading from fsys. It fails only when the
// root of fsys cannot be listed.
func NewSheetLoader(fsys fs.FS, logger *log.Logger) (*SheetLoader, error) {
	if _, err := fs.ReadDir(fsys, "."); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRoot, err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &SheetLoader{
		fsys:   fsys,
		logger: logger,
		cache:  make(map[string]*ebiten.Image),
	}, nil
}

// NewEmbeddedSheetLoader returns a loader over the images shipped with the game.
func NewEmbeddedSheetLoader(logger *log.Logger) (*SheetLoader, error) {
	sub, err := fs.Sub(imageFS, "images")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRoot, err)
	}
	return NewSheetLoader(sub, logger)
}

// Load registers the sheet at path cut by grid and returns its handle.
// Load never fails: a sheet that cannot be read, decoded or cut by grid is
// logged and its handle stays pending forever.
func (l *SheetLoader) Load(path string, grid Grid) Handle {
	var atlas *Atlas
	sheet, err := l.image(path)
	if err == nil {
		atlas, err = fitAtlas(sheet, grid)
	}
	if err != nil {
		l.logger.Printf("Warning: sheet %s will not resolve: %v", path, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, sheetEntry{path: path, grid: grid, atlas: atlas})
	return Handle(len(l.entries))
}

// Resolve returns the atlas for h once it is loaded.
func (l *SheetLoader) Resolve(h Handle) (*Atlas, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if h < 1 || int(h) > len(l.entries) {
		return nil, false
	}
	a := l.entries[h-1].atlas
	return a, a != nil
}

// image decodes path once; concurrent requests for the same path share a decode.
func (l *SheetLoader) image(path string) (*ebiten.Image, error) {
	l.mu.RLock()
	img, ok := l.cache[path]
	l.mu.RUnlock()
	if ok {
		return img, nil
	}

	v, err, _ := l.decodes.Do(path, func() (any, error) {
		f, err := l.fsys.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		img, _, err := ebitenutil.NewImageFromReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode: %w", err)
		}

		l.mu.Lock()
		l.cache[path] = img
		l.mu.Unlock()
		return img, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*ebiten.Image), nil
}

func fitAtlas(sheet *ebiten.Image, grid Grid) (*Atlas, error) {
	if grid.CellWidth <= 0 || grid.CellHeight <= 0 || grid.Frames() < 1 {
		return nil, fmt.Errorf("invalid grid %+v", grid)
	}
	b := sheet.Bounds()
	if b.Dx() < grid.Columns*grid.CellWidth || b.Dy() < grid.Rows*grid.CellHeight {
		return nil, fmt.Errorf("grid %dx%d of %dx%d cells exceeds sheet size %dx%d",
			grid.Columns, grid.Rows, grid.CellWidth, grid.CellHeight, b.Dx(), b.Dy())
	}
	return newAtlas(sheet, grid), nil
}
