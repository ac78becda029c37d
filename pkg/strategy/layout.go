package strategy

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-adaptive/pkg/analysis"
	"github.com/goliatone/go-adaptive/pkg/capability"
)

// LayoutStrategy is the declarative card/grid layout decision. Reasoning is
// always populated and names the deciding factor so UI snapshots stay
// explainable.
type LayoutStrategy struct {
	Columns   int     `json:"columns"`
	Spacing   float64 `json:"spacing"`
	Reasoning string  `json:"reasoning"`
}

// widthBreakpoints maps available width onto a base column count. Rows are
// ordered ascending so the lookup is non-decreasing in width by construction.
var widthBreakpoints = []struct {
	minWidth float64
	columns  int
}{
	{0, 1},
	{480, 2},
	{768, 3},
	{1024, 4},
	{1440, 5},
}

// complexityColumnCap limits how many columns a shape of a given complexity
// can spread across before it becomes unreadable.
var complexityColumnCap = map[analysis.ComplexityTier]int{
	analysis.ComplexitySimple:      6,
	analysis.ComplexityModerate:    4,
	analysis.ComplexityComplex:     3,
	analysis.ComplexityVeryComplex: 2,
}

// deviceSpacing is the base gap per form factor, in points.
var deviceSpacing = map[capability.DeviceType]float64{
	capability.DevicePhone:   8,
	capability.DevicePad:     16,
	capability.DeviceDesktop: 20,
	capability.DeviceTV:      32,
	capability.DeviceWatch:   4,
}

const defaultSpacing = 12.0

// SelectCardLayout decides the column/spacing parameters for a card
// collection. Degenerate inputs (zero width, empty collections, unknown
// devices) fall back to a single column rather than failing; columns are
// non-decreasing in availableWidth for a fixed item count.
func SelectCardLayout(itemCount int, availableWidth float64, device capability.DeviceType, complexity analysis.ComplexityTier) LayoutStrategy {
	spacing := deviceSpacing[device]
	if spacing <= 0 {
		spacing = defaultSpacing
	}

	if itemCount <= 0 || availableWidth <= 0 {
		return LayoutStrategy{
			Columns:   1,
			Spacing:   spacing,
			Reasoning: "degenerate content or width; falling back to a single column",
		}
	}

	columns := 1
	for _, row := range widthBreakpoints {
		if availableWidth >= row.minWidth {
			columns = row.columns
		}
	}

	reason := fmt.Sprintf("width %.0f supports %d columns", availableWidth, columns)

	if limit, ok := complexityColumnCap[complexity]; ok && columns > limit {
		columns = limit
		reason = fmt.Sprintf("%s complexity caps the grid at %d columns", complexity, limit)
	}

	if device == capability.DevicePhone && columns > 2 {
		columns = 2
		reason = "phone form factor caps the grid at 2 columns"
	}

	if columns > itemCount {
		columns = itemCount
		reason = fmt.Sprintf("only %d items to place", itemCount)
	}
	if columns < 1 {
		columns = 1
	}

	return LayoutStrategy{Columns: columns, Spacing: spacing, Reasoning: reason}
}

// SelectCardLayoutForContext runs SelectCardLayout and then applies any
// overriding layout hints carried by the presentation context.
func SelectCardLayoutForContext(ctx PresentationContext, itemCount int, availableWidth float64, device capability.DeviceType) LayoutStrategy {
	out := SelectCardLayout(itemCount, availableWidth, device, ctx.Complexity)

	if raw, ok := ctx.hintValue("layout", "columns"); ok {
		if cols, err := strconv.Atoi(raw); err == nil && cols >= 1 {
			out.Columns = cols
			out.Reasoning = fmt.Sprintf("layout hint overrides columns to %d", cols)
		}
	}
	if raw, ok := ctx.hintValue("layout", "spacing"); ok {
		if spacing, err := strconv.ParseFloat(raw, 64); err == nil && spacing > 0 {
			out.Spacing = spacing
		}
	}
	return out
}
