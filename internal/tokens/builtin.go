package tokens

// Built-in token sets keep ingestion working when a live token source is
// unavailable. Values track the published Material Design 3 and GitHub
// Primer primitives.

// BuiltinSystems lists the design systems that ship with a fallback set.
func BuiltinSystems() []string {
	return []string{"material-design-3", "primer"}
}

// Builtin returns the fallback token set for a design system, or nil when
// none exists.
func Builtin(system string) []Token {
	switch system {
	case "material-design-3":
		return builtinMaterial()
	case "primer":
		return builtinPrimer()
	default:
		return nil
	}
}

func builtinMaterial() []Token {
	const system = "material-design-3"
	return []Token{
		{System: system, Category: "color", Name: "primary", Value: "#6750A4", Description: "Primary brand color"},
		{System: system, Category: "color", Name: "on-primary", Value: "#FFFFFF", Description: "Text on primary color"},
		{System: system, Category: "color", Name: "primary-container", Value: "#EADDFF", Description: "Primary container color"},
		{System: system, Category: "color", Name: "secondary", Value: "#625B71", Description: "Secondary brand color"},
		{System: system, Category: "color", Name: "tertiary", Value: "#7D5260", Description: "Tertiary accent color"},
		{System: system, Category: "color", Name: "error", Value: "#B3261E", Description: "Error state color"},
		{System: system, Category: "color", Name: "surface", Value: "#FFFBFE", Description: "Surface background color"},
		{System: system, Category: "color", Name: "surface-variant", Value: "#E7E0EC", Description: "Variant surface color"},
		{System: system, Category: "color", Name: "outline", Value: "#79747E", Description: "Outline border color"},
		{System: system, Category: "color", Name: "outline-variant", Value: "#CAC4D0", Description: "Subtle outline color"},
		{System: system, Category: "typography", Name: "display-large", Value: "57px/64px Roboto", Description: "Display large text style"},
		{System: system, Category: "typography", Name: "display-medium", Value: "45px/52px Roboto", Description: "Display medium text style"},
		{System: system, Category: "typography", Name: "display-small", Value: "36px/44px Roboto", Description: "Display small text style"},
		{System: system, Category: "typography", Name: "headline-large", Value: "32px/40px Roboto", Description: "Headline large text style"},
		{System: system, Category: "typography", Name: "headline-medium", Value: "28px/36px Roboto", Description: "Headline medium text style"},
		{System: system, Category: "typography", Name: "headline-small", Value: "24px/32px Roboto", Description: "Headline small text style"},
		{System: system, Category: "typography", Name: "title-large", Value: "22px/28px Roboto", Description: "Title large text style"},
		{System: system, Category: "typography", Name: "title-medium", Value: "16px/24px Roboto Medium", Description: "Title medium text style"},
		{System: system, Category: "typography", Name: "title-small", Value: "14px/20px Roboto Medium", Description: "Title small text style"},
		{System: system, Category: "typography", Name: "body-large", Value: "16px/24px Roboto", Description: "Body large text style"},
		{System: system, Category: "typography", Name: "body-medium", Value: "14px/20px Roboto", Description: "Body medium text style"},
		{System: system, Category: "typography", Name: "body-small", Value: "12px/16px Roboto", Description: "Body small text style"},
		{System: system, Category: "typography", Name: "label-large", Value: "14px/20px Roboto Medium", Description: "Label large text style"},
		{System: system, Category: "typography", Name: "label-medium", Value: "12px/16px Roboto Medium", Description: "Label medium text style"},
		{System: system, Category: "typography", Name: "label-small", Value: "11px/16px Roboto Medium", Description: "Label small text style"},
		{System: system, Category: "spacing", Name: "xs", Value: "4px", Description: "Extra small spacing"},
		{System: system, Category: "spacing", Name: "sm", Value: "8px", Description: "Small spacing"},
		{System: system, Category: "spacing", Name: "md", Value: "16px", Description: "Medium spacing"},
		{System: system, Category: "spacing", Name: "lg", Value: "24px", Description: "Large spacing"},
		{System: system, Category: "spacing", Name: "xl", Value: "32px", Description: "Extra large spacing"},
		{System: system, Category: "shape", Name: "corner-none", Value: "0px", Description: "No border radius"},
		{System: system, Category: "shape", Name: "corner-extra-small", Value: "4px", Description: "Extra small border radius"},
		{System: system, Category: "shape", Name: "corner-small", Value: "8px", Description: "Small border radius"},
		{System: system, Category: "shape", Name: "corner-medium", Value: "12px", Description: "Medium border radius"},
		{System: system, Category: "shape", Name: "corner-large", Value: "16px", Description: "Large border radius"},
		{System: system, Category: "shape", Name: "corner-extra-large", Value: "28px", Description: "Extra large border radius"},
		{System: system, Category: "shape", Name: "corner-full", Value: "50%", Description: "Fully rounded shape"},
		{System: system, Category: "elevation", Name: "level0", Value: "0dp", Description: "No elevation"},
		{System: system, Category: "elevation", Name: "level1", Value: "1dp", Description: "Low elevation (cards)"},
		{System: system, Category: "elevation", Name: "level2", Value: "3dp", Description: "Medium elevation (menus)"},
		{System: system, Category: "elevation", Name: "level3", Value: "6dp", Description: "High elevation (dialogs)"},
		{System: system, Category: "elevation", Name: "level4", Value: "8dp", Description: "Navigation drawer elevation"},
		{System: system, Category: "elevation", Name: "level5", Value: "12dp", Description: "Maximum elevation"},
		{System: system, Category: "state", Name: "hover-opacity", Value: "0.08", Description: "Hover state layer opacity"},
		{System: system, Category: "state", Name: "focus-opacity", Value: "0.12", Description: "Focus state layer opacity"},
		{System: system, Category: "state", Name: "pressed-opacity", Value: "0.12", Description: "Pressed state layer opacity"},
		{System: system, Category: "state", Name: "dragged-opacity", Value: "0.16", Description: "Dragged state layer opacity"},
		{System: system, Category: "state", Name: "disabled-opacity", Value: "0.38", Description: "Disabled content opacity"},
		{System: system, Category: "state", Name: "disabled-container-opacity", Value: "0.12", Description: "Disabled container opacity"},
		{System: system, Category: "motion", Name: "duration-short1", Value: "50ms", Description: "Quick micro-interaction"},
		{System: system, Category: "motion", Name: "duration-short2", Value: "100ms", Description: "Short animation duration"},
		{System: system, Category: "motion", Name: "duration-short3", Value: "150ms", Description: "Medium-short animation"},
		{System: system, Category: "motion", Name: "duration-short4", Value: "200ms", Description: "Standard short animation"},
		{System: system, Category: "motion", Name: "duration-medium1", Value: "250ms", Description: "Medium animation"},
		{System: system, Category: "motion", Name: "duration-medium2", Value: "300ms", Description: "Standard medium animation"},
		{System: system, Category: "motion", Name: "duration-long1", Value: "450ms", Description: "Long animation"},
		{System: system, Category: "motion", Name: "duration-long2", Value: "500ms", Description: "Extended animation"},
		{System: system, Category: "motion", Name: "easing-standard", Value: "cubic-bezier(0.2, 0, 0, 1)", Description: "Standard easing curve"},
		{System: system, Category: "motion", Name: "easing-emphasized", Value: "cubic-bezier(0.2, 0, 0, 1)", Description: "Emphasized easing curve"},
	}
}

func builtinPrimer() []Token {
	const system = "primer"
	return []Token{
		{System: system, Category: "color", Name: "fg-default", Value: "#1F2328", Description: "Default foreground color"},
		{System: system, Category: "color", Name: "fg-muted", Value: "#656d76", Description: "Muted text color"},
		{System: system, Category: "color", Name: "fg-subtle", Value: "#6e7781", Description: "Subtle text color"},
		{System: system, Category: "color", Name: "fg-accent", Value: "#0969da", Description: "Accent/link foreground color"},
		{System: system, Category: "color", Name: "fg-success", Value: "#1a7f37", Description: "Success foreground color"},
		{System: system, Category: "color", Name: "fg-attention", Value: "#9a6700", Description: "Attention/warning foreground color"},
		{System: system, Category: "color", Name: "fg-danger", Value: "#d1242f", Description: "Danger/error foreground color"},
		{System: system, Category: "color", Name: "bg-default", Value: "#ffffff", Description: "Default background color"},
		{System: system, Category: "color", Name: "bg-subtle", Value: "#f6f8fa", Description: "Subtle background color"},
		{System: system, Category: "color", Name: "bg-inset", Value: "#eff2f5", Description: "Inset background color"},
		{System: system, Category: "color", Name: "bg-emphasis", Value: "#24292f", Description: "Emphasis background color"},
		{System: system, Category: "color", Name: "bg-accent", Value: "#ddf4ff", Description: "Accent background color"},
		{System: system, Category: "color", Name: "bg-success", Value: "#dafbe1", Description: "Success background color"},
		{System: system, Category: "color", Name: "bg-attention", Value: "#fff8c5", Description: "Attention background color"},
		{System: system, Category: "color", Name: "bg-danger", Value: "#ffebe9", Description: "Danger background color"},
		{System: system, Category: "color", Name: "border-default", Value: "#d0d7de", Description: "Default border color"},
		{System: system, Category: "color", Name: "border-muted", Value: "#d8dee4", Description: "Muted border color"},
		{System: system, Category: "color", Name: "border-subtle", Value: "rgba(27,31,36,0.15)", Description: "Subtle border color"},
		{System: system, Category: "typography", Name: "font-family", Value: "-apple-system,BlinkMacSystemFont,Segoe UI,Noto Sans,Helvetica,Arial,sans-serif", Description: "System font stack"},
		{System: system, Category: "typography", Name: "font-family-mono", Value: "ui-monospace,SFMono-Regular,SF Mono,Menlo,Consolas,Liberation Mono,monospace", Description: "Monospace font stack"},
		{System: system, Category: "typography", Name: "font-size-xs", Value: "12px", Description: "Extra small font size"},
		{System: system, Category: "typography", Name: "font-size-sm", Value: "14px", Description: "Small font size"},
		{System: system, Category: "typography", Name: "font-size-md", Value: "16px", Description: "Medium font size"},
		{System: system, Category: "typography", Name: "font-size-lg", Value: "20px", Description: "Large font size"},
		{System: system, Category: "typography", Name: "font-size-xl", Value: "24px", Description: "Extra large font size"},
		{System: system, Category: "typography", Name: "font-size-2xl", Value: "32px", Description: "Display font size"},
		{System: system, Category: "typography", Name: "font-weight-light", Value: "300", Description: "Light font weight"},
		{System: system, Category: "typography", Name: "font-weight-normal", Value: "400", Description: "Normal font weight"},
		{System: system, Category: "typography", Name: "font-weight-semibold", Value: "600", Description: "Semibold font weight"},
		{System: system, Category: "typography", Name: "font-weight-bold", Value: "700", Description: "Bold font weight"},
		{System: system, Category: "typography", Name: "line-height-condensed", Value: "1.25", Description: "Condensed line height"},
		{System: system, Category: "typography", Name: "line-height-default", Value: "1.5", Description: "Default line height"},
		{System: system, Category: "typography", Name: "line-height-relaxed", Value: "1.75", Description: "Relaxed line height"},
		{System: system, Category: "spacing", Name: "space-0", Value: "0", Description: "No spacing"},
		{System: system, Category: "spacing", Name: "space-1", Value: "4px", Description: "4px spacing unit"},
		{System: system, Category: "spacing", Name: "space-2", Value: "8px", Description: "8px spacing unit"},
		{System: system, Category: "spacing", Name: "space-3", Value: "16px", Description: "16px spacing unit"},
		{System: system, Category: "spacing", Name: "space-4", Value: "24px", Description: "24px spacing unit"},
		{System: system, Category: "spacing", Name: "space-5", Value: "32px", Description: "32px spacing unit"},
		{System: system, Category: "spacing", Name: "space-6", Value: "40px", Description: "40px spacing unit"},
		{System: system, Category: "spacing", Name: "space-7", Value: "48px", Description: "48px spacing unit"},
		{System: system, Category: "spacing", Name: "space-8", Value: "64px", Description: "64px spacing unit"},
		{System: system, Category: "spacing", Name: "space-9", Value: "80px", Description: "80px spacing unit"},
		{System: system, Category: "spacing", Name: "space-10", Value: "96px", Description: "96px spacing unit"},
		{System: system, Category: "spacing", Name: "space-11", Value: "112px", Description: "112px spacing unit"},
		{System: system, Category: "spacing", Name: "space-12", Value: "128px", Description: "128px spacing unit"},
		{System: system, Category: "shape", Name: "border-radius-sm", Value: "3px", Description: "Small border radius"},
		{System: system, Category: "shape", Name: "border-radius-md", Value: "6px", Description: "Medium border radius"},
		{System: system, Category: "shape", Name: "border-radius-lg", Value: "12px", Description: "Large border radius"},
		{System: system, Category: "shape", Name: "border-radius-full", Value: "100px", Description: "Pill border radius"},
		{System: system, Category: "shadow", Name: "shadow-sm", Value: "0 1px 0 rgba(27,31,36,0.04)", Description: "Small shadow"},
		{System: system, Category: "shadow", Name: "shadow-md", Value: "0 3px 6px rgba(140,149,159,0.15)", Description: "Medium shadow"},
		{System: system, Category: "shadow", Name: "shadow-lg", Value: "0 8px 24px rgba(140,149,159,0.2)", Description: "Large shadow"},
		{System: system, Category: "shadow", Name: "shadow-xl", Value: "0 12px 28px rgba(140,149,159,0.3)", Description: "Extra large shadow"},
		{System: system, Category: "breakpoint", Name: "xs", Value: "0px", Description: "Extra small breakpoint"},
		{System: system, Category: "breakpoint", Name: "sm", Value: "544px", Description: "Small breakpoint"},
		{System: system, Category: "breakpoint", Name: "md", Value: "768px", Description: "Medium breakpoint"},
		{System: system, Category: "breakpoint", Name: "lg", Value: "1012px", Description: "Large breakpoint"},
		{System: system, Category: "breakpoint", Name: "xl", Value: "1280px", Description: "Extra large breakpoint"},
	}
}
