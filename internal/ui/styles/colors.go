// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// SCALES
// =============================================================================

// Neon is the brand green scale, 50 (lightest) to 900.
var (
	Neon50  = lipgloss.Color("#f1fcf1")
	Neon100 = lipgloss.Color("#dcfcdc")
	Neon300 = lipgloss.Color("#7ef27e")
	Neon400 = lipgloss.Color("#39e639")
	Neon500 = lipgloss.Color("#1bd41b")
	Neon600 = lipgloss.Color("#0fb00f")
	Neon700 = lipgloss.Color("#108a10")
	Neon800 = lipgloss.Color("#126c12")
	Neon900 = lipgloss.Color("#125912")
)

// Slate is the neutral scale.
var (
	Slate50  = lipgloss.Color("#f8fafc")
	Slate100 = lipgloss.Color("#f1f5f9")
	Slate200 = lipgloss.Color("#e2e8f0")
	Slate300 = lipgloss.Color("#cbd5e1")
	Slate400 = lipgloss.Color("#94a3b8")
	Slate500 = lipgloss.Color("#64748b")
	Slate600 = lipgloss.Color("#475569")
	Slate700 = lipgloss.Color("#334155")
	Slate800 = lipgloss.Color("#1e293b")
	Slate900 = lipgloss.Color("#0f172a")
)

// =============================================================================
// BRAND COLORS
// =============================================================================

// Brand - Logo, active tab, scores
var Brand = lipgloss.AdaptiveColor{Light: string(Neon600), Dark: string(Neon400)}

// BrandDeep - Text on a brand background
var BrandDeep = lipgloss.AdaptiveColor{Light: string(Neon800), Dark: string(Neon300)}

// BrandBg - Selected rows and the active tab
var BrandBg = lipgloss.AdaptiveColor{Light: string(Neon100), Dark: string(Neon900)}

// Link - Domains and URLs
var Link = lipgloss.AdaptiveColor{Light: string(Neon600), Dark: string(Neon400)}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: string(Slate900)}

// SurfaceDim - Navbar and footer
var SurfaceDim = lipgloss.AdaptiveColor{Light: string(Slate50), Dark: string(Slate800)}

// Overlay - Borders and separators
var Overlay = lipgloss.AdaptiveColor{Light: string(Slate200), Dark: string(Slate700)}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Titles and bodies
var TextPrimary = lipgloss.AdaptiveColor{Light: string(Slate900), Dark: string(Slate100)}

// TextSecondary - Comment bodies, labels
var TextSecondary = lipgloss.AdaptiveColor{Light: string(Slate700), Dark: string(Slate300)}

// TextMuted - Author, age, counts
var TextMuted = lipgloss.AdaptiveColor{Light: string(Slate500), Dark: string(Slate400)}

// TextDisabled - Pager buttons that cannot be used
var TextDisabled = lipgloss.AdaptiveColor{Light: string(Slate300), Dark: string(Slate600)}

// =============================================================================
// THREAD COLORS
// =============================================================================

// BorderEven - Left rule of comments at even depth
var BorderEven = lipgloss.AdaptiveColor{Light: string(Slate200), Dark: string(Slate700)}

// BorderOdd - Left rule of comments at odd depth
var BorderOdd = lipgloss.AdaptiveColor{Light: string(Neon300), Dark: string(Neon700)}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// ErrorFg - Error text
var ErrorFg = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#FCA5A5"}

// ErrorBg - Error box background
var ErrorBg = lipgloss.AdaptiveColor{Light: "#FEE2E2", Dark: "#7F1D1D"}

// ErrorBorder - Error box border
var ErrorBorder = lipgloss.AdaptiveColor{Light: "#FECACA", Dark: "#991B1B"}
