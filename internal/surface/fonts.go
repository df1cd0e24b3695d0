package surface

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	logging "simple-charts/internal/infra/log"

	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// SystemFonts makes the font loader search systemFontPaths instead of
// using the embedded Go fonts.
const SystemFonts = "system"

var systemFontPaths = []string{
	"etc/fonts/InterVariable.ttf",
	"etc/fonts/Inter-Regular.ttf",
	"~/Library/Fonts/InterVariable.ttf",
	"~/Library/Fonts/Inter-Regular.ttf",
	"/Library/Fonts/Inter-Regular.ttf",
	"/usr/share/fonts/truetype/inter/Inter-Regular.ttf",
	"/usr/local/share/fonts/Inter-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
}

type faceKey struct {
	size float64
	bold bool
}

// fontLoader parses the regular and bold fonts once and caches a face per
// (size, bold).
type fontLoader struct {
	path string

	once    sync.Once
	regular *truetype.Font
	bold    *truetype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

func newFontLoader(path string) *fontLoader {
	return &fontLoader{path: path, faces: make(map[faceKey]font.Face)}
}

func (l *fontLoader) face(f Font) font.Face {
	l.once.Do(l.load)

	l.mu.Lock()
	defer l.mu.Unlock()

	key := faceKey{size: f.Size, bold: f.Bold}
	if face, ok := l.faces[key]; ok {
		return face
	}

	ttf := l.regular
	if f.Bold && l.bold != nil {
		ttf = l.bold
	}
	var face font.Face = basicfont.Face7x13
	if ttf != nil && f.Size > 0 {
		face = truetype.NewFace(ttf, &truetype.Options{Size: f.Size})
	}
	l.faces[key] = face
	return face
}

func (l *fontLoader) load() {
	var err error
	l.bold, err = truetype.Parse(gobold.TTF)
	if err != nil {
		logging.LogWarn("Failed to parse embedded bold font", zap.Error(err))
	}

	switch l.path {
	case "":
		l.regular, err = truetype.Parse(goregular.TTF)
		if err != nil {
			logging.LogWarn("Failed to parse embedded regular font, using basic face", zap.Error(err))
		}
		return
	case SystemFonts:
		for _, p := range systemFontPaths {
			if ttf, err := loadFontFile(expandPath(p)); err == nil {
				l.regular = ttf
				logging.LogInfo("Loaded system font", zap.String("path", p))
				return
			}
		}
		logging.LogWarn("No system font found, using embedded font",
			zap.Int("paths_checked", len(systemFontPaths)))
	default:
		ttf, err := loadFontFile(expandPath(l.path))
		if err == nil {
			l.regular = ttf
			logging.LogInfo("Loaded font", zap.String("path", l.path))
			return
		}
		logging.LogWarn("Font file failed to load, using embedded font",
			zap.String("path", l.path),
			zap.Error(err))
	}

	l.regular, _ = truetype.Parse(goregular.TTF)
}

func loadFontFile(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	return ttf, nil
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
