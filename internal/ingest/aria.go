package ingest

import (
	"context"
	"fmt"
	"strings"

	"uiforge/internal/embedstore"
)

// AriaPattern is a WAI-ARIA Authoring Practices interaction pattern.
type AriaPattern struct {
	Name        string
	Description string
	Roles       []string
	Keyboard    []string
	URL         string
}

// ingestAriaPatterns stores the bundled WAI-ARIA Authoring Practices
// patterns as sourceType "pattern".
func (p *Pipeline) ingestAriaPatterns(ctx context.Context) (int, error) {
	patterns := ariaPatterns()

	records := make([]embedstore.Record, len(patterns))
	texts := make([]string, len(patterns))
	for i, pat := range patterns {
		slug := strings.ReplaceAll(strings.ToLower(pat.Name), " ", "-")
		records[i] = embedstore.Record{
			SourceID:   "aria-" + slug,
			SourceType: embedstore.SourcePattern,
		}
		texts[i] = fmt.Sprintf("ARIA pattern %s: %s. Roles: %s. Keys: %s",
			pat.Name, pat.Description, strings.Join(pat.Roles, ", "), strings.Join(pat.Keyboard, "; "))
	}

	count, err := p.embedAndStore(ctx, records, texts)
	if err != nil {
		return 0, err
	}

	p.logger.InfoContext(ctx, "aria patterns ingested", "count", count)
	return count, nil
}

func ariaPatterns() []AriaPattern {
	return []AriaPattern{
		{
			Name:        "Accordion",
			Description: "A vertically stacked set of interactive headings that each reveal content",
			Roles:       []string{"heading", "button", "region"},
			Keyboard:    []string{"Enter/Space to toggle", "Up/Down to navigate", "Home/End for first/last"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/accordion/",
		},
		{
			Name:        "Alert",
			Description: "Element that displays a brief important message to attract user attention without interrupting flow",
			Roles:       []string{"alert"},
			Keyboard:    []string{"Not interactive by default"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/alert/",
		},
		{
			Name:        "Alert Dialog",
			Description: "Modal dialog that interrupts workflow to communicate an important message requiring confirmation",
			Roles:       []string{"alertdialog", "document"},
			Keyboard:    []string{"Tab to cycle focus within", "Escape to close", "Enter to confirm"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/alertdialog/",
		},
		{
			Name:        "Breadcrumb",
			Description: "Navigation showing the current page location within a hierarchy",
			Roles:       []string{"navigation"},
			Keyboard:    []string{"Tab between links"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/breadcrumb/",
		},
		{
			Name:        "Button",
			Description: "Interactive element triggered via click, tap, keyboard, or voice to perform an action",
			Roles:       []string{"button"},
			Keyboard:    []string{"Enter/Space to activate", "Focus via Tab"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/button/",
		},
		{
			Name:        "Carousel",
			Description: "A section with content that scrolls through a set of items",
			Roles:       []string{"region", "group", "tablist"},
			Keyboard:    []string{"Tab to controls", "Arrow keys to navigate slides", "Enter to activate controls"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/carousel/",
		},
		{
			Name:        "Checkbox",
			Description: "Input that allows selecting one or more options from a group",
			Roles:       []string{"checkbox", "group"},
			Keyboard:    []string{"Space to toggle", "Tab to navigate"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/checkbox/",
		},
		{
			Name:        "Combobox",
			Description: "Input with an associated popup for selecting a value from a collection",
			Roles:       []string{"combobox", "listbox", "option"},
			Keyboard:    []string{"Down to open", "Up/Down to navigate", "Enter to select", "Escape to close"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/combobox/",
		},
		{
			Name:        "Dialog Modal",
			Description: "Window overlaid on the primary content that traps focus",
			Roles:       []string{"dialog"},
			Keyboard:    []string{"Tab to cycle focus", "Escape to close", "Focus trapped within"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/dialog-modal/",
		},
		{
			Name:        "Disclosure",
			Description: "Widget that enables showing and hiding content sections",
			Roles:       []string{"button"},
			Keyboard:    []string{"Enter/Space to toggle", "aria-expanded to indicate state"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/disclosure/",
		},
		{
			Name:        "Feed",
			Description: "Scrollable list of articles where new articles can be added dynamically",
			Roles:       []string{"feed", "article"},
			Keyboard:    []string{"Page Down/Up to navigate articles", "Tab for interactive elements"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/feed/",
		},
		{
			Name:        "Grid",
			Description: "Interactive tabular data with two-dimensional navigation",
			Roles:       []string{"grid", "row", "gridcell", "columnheader", "rowheader"},
			Keyboard:    []string{"Arrow keys for cell navigation", "Home/End for row edges", "Ctrl+Home/End for grid edges"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/grid/",
		},
		{
			Name:        "Link",
			Description: "Interactive reference to a resource inside or outside the current page",
			Roles:       []string{"link"},
			Keyboard:    []string{"Enter to activate", "Tab to focus"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/link/",
		},
		{
			Name:        "Listbox",
			Description: "Widget that presents a list of options for selection",
			Roles:       []string{"listbox", "option"},
			Keyboard:    []string{"Up/Down to navigate", "Home/End for first/last", "Type to search"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/listbox/",
		},
		{
			Name:        "Menu",
			Description: "Widget offering a list of choices such as actions or functions",
			Roles:       []string{"menu", "menuitem", "menuitemcheckbox", "menuitemradio"},
			Keyboard:    []string{"Arrow keys to navigate", "Enter to activate", "Escape to close"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/menu/",
		},
		{
			Name:        "Menu Button",
			Description: "Button that opens a menu of actions or options",
			Roles:       []string{"button", "menu", "menuitem"},
			Keyboard:    []string{"Enter/Space/Down to open", "Arrow keys in menu", "Escape to close"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/menu-button/",
		},
		{
			Name:        "Meter",
			Description: "Graphical display of a numeric value within a known range",
			Roles:       []string{"meter"},
			Keyboard:    []string{"Not interactive"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/meter/",
		},
		{
			Name:        "Radio Group",
			Description: "Set of checkable buttons where only one can be checked at a time",
			Roles:       []string{"radiogroup", "radio"},
			Keyboard:    []string{"Arrow keys to select", "Tab to enter/leave group"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/radio/",
		},
		{
			Name:        "Slider",
			Description: "Input for selecting a value from a range",
			Roles:       []string{"slider"},
			Keyboard:    []string{"Arrow keys to adjust", "Home/End for min/max", "Page Up/Down for larger steps"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/slider/",
		},
		{
			Name:        "Spinbutton",
			Description: "Input for selecting a numeric value from a range with increment/decrement controls",
			Roles:       []string{"spinbutton"},
			Keyboard:    []string{"Up/Down to increment/decrement", "Home/End for min/max"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/spinbutton/",
		},
		{
			Name:        "Switch",
			Description: "Input representing on/off boolean values",
			Roles:       []string{"switch"},
			Keyboard:    []string{"Space to toggle", "Enter to toggle"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/switch/",
		},
		{
			Name:        "Table",
			Description: "Static tabular data in a grid-like structure",
			Roles:       []string{"table", "row", "cell", "columnheader", "rowheader"},
			Keyboard:    []string{"Tab through interactive content", "Not navigable by arrow keys"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/table/",
		},
		{
			Name:        "Tabs",
			Description: "Set of layered sections of content where one panel is displayed at a time",
			Roles:       []string{"tablist", "tab", "tabpanel"},
			Keyboard:    []string{"Arrow keys between tabs", "Tab to panel", "Home/End for first/last tab"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/tabs/",
		},
		{
			Name:        "Toolbar",
			Description: "Container for grouping frequently used controls",
			Roles:       []string{"toolbar"},
			Keyboard:    []string{"Arrow keys between tools", "Tab to enter/leave toolbar"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/toolbar/",
		},
		{
			Name:        "Tooltip",
			Description: "Popup displaying descriptive information about an element on hover or focus",
			Roles:       []string{"tooltip"},
			Keyboard:    []string{"Appears on focus", "Escape to dismiss"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/tooltip/",
		},
		{
			Name:        "Tree View",
			Description: "Hierarchical list with nested groups that can be expanded/collapsed",
			Roles:       []string{"tree", "treeitem", "group"},
			Keyboard:    []string{"Arrow keys to navigate", "Enter to activate", "Left/Right to collapse/expand"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/treeview/",
		},
		{
			Name:        "Treegrid",
			Description: "Grid with hierarchical rows that can be expanded/collapsed",
			Roles:       []string{"treegrid", "row", "gridcell"},
			Keyboard:    []string{"Arrow keys for navigation", "Enter to expand/collapse", "Home/End for edges"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/treegrid/",
		},
		{
			Name:        "Window Splitter",
			Description: "Movable separator between two sections that lets users resize",
			Roles:       []string{"separator"},
			Keyboard:    []string{"Arrow keys to resize", "Home/End for min/max", "Enter to toggle collapse"},
			URL:         "https://www.w3.org/WAI/ARIA/apg/patterns/windowsplitter/",
		},
		{
			Name:        "Toast",
			Description: "Non-modal notification that auto-dismisses after a timeout",
			Roles:       []string{"status", "alert"},
			Keyboard:    []string{"Focus moves to toast on appearance", "Escape to dismiss early"},
		},
		{
			Name:        "Navigation Menu",
			Description: "Primary site navigation with optional dropdowns and mobile toggle",
			Roles:       []string{"navigation", "menubar", "menu", "menuitem"},
			Keyboard:    []string{"Arrow keys between items", "Enter to follow links", "Escape to close submenus"},
		},
	}
}
