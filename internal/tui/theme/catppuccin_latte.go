package theme

// NewCatppuccinLatte creates the light Catppuccin Latte theme.
func NewCatppuccinLatte() *Theme {
	return &Theme{
		Name:   "catppuccin-latte",
		IsDark: false,

		Primary:   "#8839ef", // Mauve
		Secondary: "#1e66f5", // Blue
		Tertiary:  "#7287fd", // Lavender

		BgCrust:    "#dce0e8",
		BgBase:     "#eff1f5",
		BgMantle:   "#e6e9ef",
		BgSurface0: "#ccd0da",
		BgSurface1: "#bcc0cc",
		BgSurface2: "#acb0be",
		BgOverlay:  "#9ca0b0",

		FgMuted:  "#6c6f85",
		FgSubtle: "#5c5f77",
		FgBase:   "#4c4f69",
		FgBright: "#dc8a78",

		Success: "#40a02b",
		Warning: "#df8e1d",
		Error:   "#d20f39",
		Info:    "#04a5e5",
	}
}
