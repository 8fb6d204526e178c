package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode selects the light or dark token set.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingNone SpacingSize = iota
	SpacingXS
	SpacingS
	SpacingM
	SpacingL
	SpacingXL
)

const spacingSizeCount = int(SpacingXL) + 1

var spacingNames = [spacingSizeCount]string{"none", "xs", "s", "m", "l", "xl"}

func (s SpacingSize) String() string {
	if s < 0 || int(s) >= spacingSizeCount {
		return "unknown"
	}
	return spacingNames[s]
}

// SpacingScale maps each SpacingSize to a number of terminal cells.
type SpacingScale [spacingSizeCount]int

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyBody TypographyVariant = iota
	TypographyDisplay
	TypographyTitle
	TypographySubtitle
	TypographyLabel
	TypographyCaption
	TypographyCode
	TypographyEmphasis
)

var typographyNames = map[TypographyVariant]string{
	TypographyBody:     "body",
	TypographyDisplay:  "display",
	TypographyTitle:    "title",
	TypographySubtitle: "subtitle",
	TypographyLabel:    "label",
	TypographyCaption:  "caption",
	TypographyCode:     "code",
	TypographyEmphasis: "emphasis",
}

func (t TypographyVariant) String() string {
	if name, ok := typographyNames[t]; ok {
		return name
	}
	return "unknown"
}

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantNeutral
	ButtonVariantGhost
	ButtonVariantDanger
)

type AlertVariant int

const (
	AlertVariantSuccess AlertVariant = iota
	AlertVariantError
	AlertVariantWarning
	AlertVariantInfo
)

// Category is the closed set of event categories. Every lookup keyed by a
// Category is an exhaustive switch, so there is no silent fallback colour.
type Category int

const (
	CategoryMusic Category = iota
	CategorySport
	CategoryArts
	CategoryFood
	CategoryTech
	CategoryCommunity
)

const categoryCount = int(CategoryCommunity) + 1

// Categories lists every category in display order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for i := 0; i < categoryCount; i++ {
		out = append(out, Category(i))
	}
	return out
}

func (c Category) String() string {
	switch c {
	case CategoryMusic:
		return "music"
	case CategorySport:
		return "sport"
	case CategoryArts:
		return "arts"
	case CategoryFood:
		return "food"
	case CategoryTech:
		return "tech"
	case CategoryCommunity:
		return "community"
	default:
		return "unknown"
	}
}

// ParseCategory parses a category name.
func ParseCategory(raw string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for _, c := range Categories() {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", raw)
}

// ColourSet represents a semantic colour set:
//
//   - Base: the background or brand colour
//   - OnBase: text colour that contrasts with Base
//   - Muted: a desaturated Base for subtle accents
//   - Contrast: an accent that stands out against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Neutral ColourSet
	Success ColourSet
	Warning ColourSet
	Danger  ColourSet
	Info    ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyScale contains the semantic text styles.
type TypographyScale struct {
	Body     lipgloss.Style
	Display  lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Caption  lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[interface{}]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[interface{}]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant interface{}, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant interface{}) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable set of design tokens. Build it once and pass it
// through RenderContext.
type Theme struct {
	Name       string
	Mode       Mode
	Palette    Palette
	Categories [categoryCount]ColourSet
	Borders    BorderSet
	Spacing    SpacingScale
	Typography TypographyScale
	Variants   *VariantRegistry
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func defaultSpacing() SpacingScale {
	return SpacingScale{
		SpacingNone: 0,
		SpacingXS:   1,
		SpacingS:    2,
		SpacingM:    3,
		SpacingL:    4,
		SpacingXL:   6,
	}
}

func lightPalette() Palette {
	return Palette{
		Primary: ColourSet{
			Base:     ac("#6d28d9", "#8b5cf6"),
			OnBase:   ac("#faf5ff", "#faf5ff"),
			Muted:    ac("#ede9fe", "#4c1d95"),
			Contrast: ac("#f59e0b", "#fbbf24"),
		},
		Surface: ColourSet{
			Base:     ac("#ffffff", "#18181b"),
			OnBase:   ac("#18181b", "#fafafa"),
			Muted:    ac("#f4f4f5", "#27272a"),
			Contrast: ac("#6d28d9", "#a78bfa"),
		},
		Neutral: ColourSet{
			Base:     ac("#e4e4e7", "#3f3f46"),
			OnBase:   ac("#18181b", "#fafafa"),
			Muted:    ac("#a1a1aa", "#71717a"),
			Contrast: ac("#18181b", "#fafafa"),
		},
		Success: ColourSet{
			Base:     ac("#16a34a", "#22c55e"),
			OnBase:   ac("#f0fdf4", "#052e16"),
			Muted:    ac("#dcfce7", "#14532d"),
			Contrast: ac("#052e16", "#f0fdf4"),
		},
		Warning: ColourSet{
			Base:     ac("#d97706", "#f59e0b"),
			OnBase:   ac("#fffbeb", "#451a03"),
			Muted:    ac("#fef3c7", "#78350f"),
			Contrast: ac("#451a03", "#fffbeb"),
		},
		Danger: ColourSet{
			Base:     ac("#dc2626", "#ef4444"),
			OnBase:   ac("#fef2f2", "#450a0a"),
			Muted:    ac("#fee2e2", "#7f1d1d"),
			Contrast: ac("#450a0a", "#fef2f2"),
		},
		Info: ColourSet{
			Base:     ac("#0284c7", "#38bdf8"),
			OnBase:   ac("#f0f9ff", "#082f49"),
			Muted:    ac("#e0f2fe", "#0c4a6e"),
			Contrast: ac("#082f49", "#f0f9ff"),
		},
	}
}

func defaultCategories() [categoryCount]ColourSet {
	var sets [categoryCount]ColourSet
	for _, c := range Categories() {
		sets[c] = categoryColours(c)
	}
	return sets
}

func categoryColours(c Category) ColourSet {
	switch c {
	case CategoryMusic:
		return ColourSet{Base: ac("#db2777", "#f472b6"), OnBase: ac("#fdf2f8", "#500724"), Muted: ac("#fce7f3", "#831843"), Contrast: ac("#500724", "#fdf2f8")}
	case CategorySport:
		return ColourSet{Base: ac("#059669", "#34d399"), OnBase: ac("#ecfdf5", "#022c22"), Muted: ac("#d1fae5", "#064e3b"), Contrast: ac("#022c22", "#ecfdf5")}
	case CategoryArts:
		return ColourSet{Base: ac("#ea580c", "#fb923c"), OnBase: ac("#fff7ed", "#431407"), Muted: ac("#ffedd5", "#7c2d12"), Contrast: ac("#431407", "#fff7ed")}
	case CategoryFood:
		return ColourSet{Base: ac("#ca8a04", "#facc15"), OnBase: ac("#fefce8", "#422006"), Muted: ac("#fef9c3", "#713f12"), Contrast: ac("#422006", "#fefce8")}
	case CategoryTech:
		return ColourSet{Base: ac("#2563eb", "#60a5fa"), OnBase: ac("#eff6ff", "#172554"), Muted: ac("#dbeafe", "#1e3a8a"), Contrast: ac("#172554", "#eff6ff")}
	case CategoryCommunity:
		return ColourSet{Base: ac("#0d9488", "#2dd4bf"), OnBase: ac("#f0fdfa", "#042f2e"), Muted: ac("#ccfbf1", "#134e4a"), Contrast: ac("#042f2e", "#f0fdfa")}
	}
	panic(fmt.Sprintf("components: no colours for category %d", int(c)))
}

func defaultBorders() BorderSet {
	return BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     body,
		Display:  body.Bold(true).Foreground(p.Primary.Base).Underline(true),
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Foreground(p.Neutral.Muted),
		Label:    body.Bold(true),
		Caption:  body.Faint(true),
		Code:     body.Foreground(p.Primary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: body.Bold(true).Italic(true),
	}
}

func newTheme(name string, mode Mode, palette Palette) Theme {
	theme := Theme{
		Name:       name,
		Mode:       mode,
		Palette:    palette,
		Categories: defaultCategories(),
		Borders:    defaultBorders(),
		Spacing:    defaultSpacing(),
		Typography: defaultTypography(palette),
	}
	theme.Variants = defaultVariants()
	return theme
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	return LightTheme()
}

// LightTheme returns the light token set.
func LightTheme() Theme {
	return newTheme("light", ModeLight, lightPalette())
}

// DarkTheme returns the dark token set. Only the surface and neutral slots
// differ from the light theme.
func DarkTheme() Theme {
	palette := lightPalette()
	palette.Surface = ColourSet{
		Base:     ac("#09090b", "#09090b"),
		OnBase:   ac("#fafafa", "#fafafa"),
		Muted:    ac("#27272a", "#27272a"),
		Contrast: ac("#a78bfa", "#a78bfa"),
	}
	palette.Neutral = ColourSet{
		Base:     ac("#3f3f46", "#3f3f46"),
		OnBase:   ac("#fafafa", "#fafafa"),
		Muted:    ac("#71717a", "#71717a"),
		Contrast: ac("#fafafa", "#fafafa"),
	}
	return newTheme("dark", ModeDark, palette)
}

// ThemeByName returns the light or dark theme.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "light", "default":
		return LightTheme(), nil
	case "dark":
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (want light or dark)", name)
	}
}

func defaultVariants() *VariantRegistry {
	registry := NewVariantRegistry()

	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(
		Background(PalettePrimary),
		PaddingX(SpacingS),
		Typography(TypographyLabel),
	))
	registry.Register(ButtonVariantNeutral, NewCompositeStrategy(
		Background(PaletteNeutral),
		PaddingX(SpacingS),
		Typography(TypographyLabel),
	))
	registry.Register(ButtonVariantGhost, NewCompositeStrategy(
		Foreground(PalettePrimary),
		PaddingX(SpacingXS),
	))
	registry.Register(ButtonVariantDanger, NewCompositeStrategy(
		Background(PaletteDanger),
		PaddingX(SpacingS),
		Typography(TypographyLabel),
	))

	registry.Register(AlertVariantSuccess, NewCompositeStrategy(Foreground(PaletteSuccess)))
	registry.Register(AlertVariantWarning, NewCompositeStrategy(Foreground(PaletteWarning)))
	registry.Register(AlertVariantError, NewCompositeStrategy(Foreground(PaletteDanger)))
	registry.Register(AlertVariantInfo, NewCompositeStrategy(Foreground(PaletteInfo)))

	return registry
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return theme.Borders.None
	}
}

// SpacingValue returns the number of cells for size.
func SpacingValue(theme Theme, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= spacingSizeCount {
		return 0
	}
	return theme.Spacing[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyDisplay:
		return typo.Display
	case TypographyTitle:
		return typo.Title
	case TypographySubtitle:
		return typo.Subtitle
	case TypographyLabel:
		return typo.Label
	case TypographyCaption:
		return typo.Caption
	case TypographyCode:
		return typo.Code
	case TypographyEmphasis:
		return typo.Emphasis
	default:
		return typo.Body
	}
}

// CategoryColour returns the colour set for c.
func CategoryColour(theme Theme, c Category) ColourSet {
	return theme.Categories[c]
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo    PaletteSlot = func(p Palette) ColourSet { return p.Info }
)

var paletteSlots = []struct {
	name string
	slot PaletteSlot
}{
	{"primary", PalettePrimary},
	{"surface", PaletteSurface},
	{"neutral", PaletteNeutral},
	{"success", PaletteSuccess},
	{"warning", PaletteWarning},
	{"danger", PaletteDanger},
	{"info", PaletteInfo},
}

// Background applies a semantic background colour and the matching foreground.
//
//	card := NewCard().WithAppliers(Background(PalettePrimary))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// CategoryAccent colours text with the category's base colour.
func CategoryAccent(c Category) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(CategoryColour(theme, c).Base)
	}
}

// CategoryFill paints the category colour as a background.
func CategoryFill(c Category) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := CategoryColour(theme, c)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(SpacingValue(theme, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := SpacingValue(theme, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := SpacingValue(theme, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(SpacingValue(theme, size))
	}
}

// Typography applies typography styling.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// Token is one named design token with its value resolved for a theme's mode.
type Token struct {
	Group string
	Name  string
	Value string
}

// Key returns the dotted lookup name, e.g. "palette.primary.base".
func (t Token) Key() string {
	return t.Group + "." + t.Name
}

// Tokens flattens the theme into a sorted token table.
func Tokens(theme Theme) []Token {
	var tokens []Token

	pick := func(c lipgloss.AdaptiveColor) string {
		if theme.Mode == ModeDark {
			return c.Dark
		}
		return c.Light
	}
	addSet := func(group, name string, cs ColourSet) {
		tokens = append(tokens,
			Token{Group: group, Name: name + ".base", Value: pick(cs.Base)},
			Token{Group: group, Name: name + ".on-base", Value: pick(cs.OnBase)},
			Token{Group: group, Name: name + ".muted", Value: pick(cs.Muted)},
			Token{Group: group, Name: name + ".contrast", Value: pick(cs.Contrast)},
		)
	}

	for _, entry := range paletteSlots {
		addSet("palette", entry.name, entry.slot(theme.Palette))
	}
	for _, c := range Categories() {
		addSet("category", c.String(), CategoryColour(theme, c))
	}
	for i := 0; i < spacingSizeCount; i++ {
		tokens = append(tokens, Token{
			Group: "spacing",
			Name:  SpacingSize(i).String(),
			Value: fmt.Sprintf("%d", theme.Spacing[i]),
		})
	}
	for variant, name := range typographyNames {
		tokens = append(tokens, Token{
			Group: "typography",
			Name:  name,
			Value: describeStyle(TypographyStyle(theme, variant)),
		})
	}

	sort.SliceStable(tokens, func(i, j int) bool {
		if tokens[i].Group != tokens[j].Group {
			return tokens[i].Group < tokens[j].Group
		}
		return tokens[i].Name < tokens[j].Name
	})
	return tokens
}

// LookupToken resolves a dotted token name such as "spacing.m".
func LookupToken(theme Theme, key string) (string, bool) {
	for _, token := range Tokens(theme) {
		if token.Key() == key {
			return token.Value, true
		}
	}
	return "", false
}

func describeStyle(style lipgloss.Style) string {
	var attrs []string
	if style.GetBold() {
		attrs = append(attrs, "bold")
	}
	if style.GetItalic() {
		attrs = append(attrs, "italic")
	}
	if style.GetUnderline() {
		attrs = append(attrs, "underline")
	}
	if style.GetFaint() {
		attrs = append(attrs, "faint")
	}
	if len(attrs) == 0 {
		return "regular"
	}
	return strings.Join(attrs, "+")
}
