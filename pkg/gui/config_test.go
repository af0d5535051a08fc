package gui

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/hmidgg/chess/pkg"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	theme, err := cfg.LoadTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeBasic, theme)
	k, err := cfg.PromotionKind()
	require.NoError(t, err)
	assert.Equal(t, pkg.Queen, k)
	d, err := cfg.ExitDelay()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, d)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"theme": "mine",
		"themes": [{"name": "mine", "squareDark": "#112233", "squareCheck": "#ff0000"}],
		"whiteName": "ahmed",
		"sprites": {"wK": "K"},
		"promotion": "n",
		"exitAfter": "0s"
	}`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	theme, err := cfg.LoadTheme()
	require.NoError(t, err)
	assert.Equal(t, "mine", theme.Name)
	assert.Equal(t, int32(0x112233), theme.SquareDark.Hex())
	assert.Equal(t, int32(0xff0000), theme.SquareCheck.Hex())
	assert.Equal(t, "ahmed", cfg.WhiteName)
	assert.Equal(t, 50, cfg.CellSize)

	k, err := cfg.PromotionKind()
	require.NoError(t, err)
	assert.Equal(t, pkg.Knight, k)
	d, err := cfg.ExitDelay()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), d)

	sprites, err := cfg.LoadSprites()
	require.NoError(t, err)
	assert.Equal(t, 'K', sprites[pkg.Piece{Side: pkg.White, Kind: pkg.King}].Glyph)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `{"theme": `))
	assert.Error(t, err)
}

func TestValidateReportsEverything(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "nope"
	cfg.Promotion = "k"
	cfg.Sprites = map[string]string{"bB": ""}

	err := cfg.Validate()
	require.Error(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 3)
	assert.Equal(t, ErrUnknownTheme, errors.Cause(merr.Errors[0]))
}

func TestImportThemes(t *testing.T) {
	theme, err := ImportThemes("classic", nil)
	require.NoError(t, err)
	assert.Equal(t, ThemeClassic, theme)

	custom := ThemeHex{Name: "classic", SquareHigh: "#00ff00"}
	theme, err = ImportThemes("classic", []ThemeHex{custom})
	require.NoError(t, err)
	assert.Equal(t, tcell.GetColor("#00ff00"), theme.SquareHigh)

	_, err = ImportThemes("missing", nil)
	assert.Equal(t, ErrUnknownTheme, errors.Cause(err))
}
