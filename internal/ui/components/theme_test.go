package components

import (
	"sort"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "light", theme.Name)
	assert.Equal(t, ModeLight, theme.Mode)
	assert.Equal(t, "#6d28d9", theme.Palette.Primary.Base.Light)
	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.Equal(t, 3, SpacingValue(theme, SpacingM))
	assert.Equal(t, 0, SpacingValue(theme, SpacingSize(42)))
	assert.True(t, theme.Typography.Title.GetBold())
	require.NotNil(t, theme.Variants)
}

func TestDarkThemeOverridesSurface(t *testing.T) {
	light := LightTheme()
	dark := DarkTheme()

	assert.Equal(t, ModeDark, dark.Mode)
	assert.NotEqual(t, light.Palette.Surface.Base, dark.Palette.Surface.Base)
	assert.Equal(t, light.Palette.Primary, dark.Palette.Primary)
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"", "light", " Default "} {
		theme, err := ThemeByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, "light", theme.Name)
	}

	theme, err := ThemeByName("DARK")
	require.NoError(t, err)
	assert.Equal(t, "dark", theme.Name)

	_, err = ThemeByName("sepia")
	assert.Error(t, err)
}

func TestCategoryColoursAreDistinct(t *testing.T) {
	theme := DefaultTheme()
	seen := make(map[string]Category)

	for _, c := range Categories() {
		cs := CategoryColour(theme, c)
		require.NotEmpty(t, cs.Base.Light, c.String())
		if other, dup := seen[cs.Base.Light]; dup {
			t.Fatalf("%s and %s share base colour %s", c, other, cs.Base.Light)
		}
		seen[cs.Base.Light] = c
	}
}

func TestCategoryColoursPanicsOutsideEnum(t *testing.T) {
	assert.Panics(t, func() { categoryColours(Category(99)) })
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Music ")
	require.NoError(t, err)
	assert.Equal(t, CategoryMusic, c)

	_, err = ParseCategory("opera")
	assert.Error(t, err)
	assert.Equal(t, "unknown", Category(-1).String())
}

func TestTokensSortedAndResolvedForMode(t *testing.T) {
	light := Tokens(LightTheme())
	require.NotEmpty(t, light)

	keys := make([]string, 0, len(light))
	for _, token := range light {
		keys = append(keys, token.Key())
	}
	assert.True(t, sort.StringsAreSorted(keys))

	value, ok := LookupToken(LightTheme(), "spacing.m")
	require.True(t, ok)
	assert.Equal(t, "3", value)

	value, ok = LookupToken(DarkTheme(), "palette.primary.base")
	require.True(t, ok)
	assert.Equal(t, "#8b5cf6", value)

	value, ok = LookupToken(LightTheme(), "typography.display")
	require.True(t, ok)
	assert.Equal(t, "bold+underline", value)

	_, ok = LookupToken(LightTheme(), "palette.missing.base")
	assert.False(t, ok)
}

func TestVariantRegistryNilSafe(t *testing.T) {
	var registry *VariantRegistry
	assert.Nil(t, registry.Get(ButtonVariantPrimary))

	theme := DefaultTheme()
	assert.NotNil(t, theme.Variants.Get(ButtonVariantNeutral))
	assert.NotNil(t, theme.Variants.Get(AlertVariantError))
	assert.Nil(t, theme.Variants.Get("unregistered"))
}

func TestStyleAppliesModifiersInOrder(t *testing.T) {
	theme := DefaultTheme()

	style := Style(theme, lipgloss.NewStyle(),
		Background(PalettePrimary),
		Foreground(PaletteDanger),
		PaddingX(SpacingS),
	)

	assert.Equal(t, theme.Palette.Primary.Base, style.GetBackground())
	assert.Equal(t, theme.Palette.Danger.Base, style.GetForeground())
	assert.Equal(t, 2, style.GetPaddingLeft())
	assert.Equal(t, 2, style.GetPaddingRight())
}
