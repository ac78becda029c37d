package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-adaptive/pkg/analysis"
	"github.com/goliatone/go-adaptive/pkg/capability"
	"github.com/goliatone/go-adaptive/pkg/strategy"
)

var strategyFlags struct {
	items       int
	width       float64
	device      string
	complexity  string
	interaction string
	density     string
	ocrTypes    []string
	document    string
}

var strategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Preview layout, expansion, and OCR strategies for a simulated device",
	RunE: func(cmd *cobra.Command, args []string) error {
		device := capability.DeviceType(strategyFlags.device)
		complexity := parseComplexity(strategyFlags.complexity)
		snapshot := capability.Defaults(platformForDevice(device))
		snapshot.Device = device

		out := map[string]any{
			"layout": strategy.SelectCardLayout(strategyFlags.items, strategyFlags.width, device, complexity),
			"expansion": strategy.SelectExpansion(
				strategyFlags.items,
				strategyFlags.width,
				device,
				strategy.InteractionStyle(strategyFlags.interaction),
				strategy.ContentDensity(strategyFlags.density),
			),
		}

		if strategyFlags.document != "" {
			out["ocr"] = strategy.SelectOCRForDocument(strategy.DocumentType(strategyFlags.document), snapshot)
		} else if len(strategyFlags.ocrTypes) > 0 {
			types := make([]strategy.TextType, 0, len(strategyFlags.ocrTypes))
			for _, raw := range strategyFlags.ocrTypes {
				types = append(types, strategy.TextType(strings.TrimSpace(raw)))
			}
			out["ocr"] = strategy.SelectOCR(types, snapshot)
		}

		return printJSON(cmd, out)
	},
}

func init() {
	strategyCmd.Flags().IntVar(&strategyFlags.items, "items", 1, "item count")
	strategyCmd.Flags().Float64Var(&strategyFlags.width, "width", 375, "available width in points")
	strategyCmd.Flags().StringVar(&strategyFlags.device, "device", "phone", "device type (phone|pad|desktop|tv|watch)")
	strategyCmd.Flags().StringVar(&strategyFlags.complexity, "complexity", "simple", "content complexity (simple|moderate|complex|veryComplex)")
	strategyCmd.Flags().StringVar(&strategyFlags.interaction, "interaction", "touch", "interaction style (static|touch|pointer|remote)")
	strategyCmd.Flags().StringVar(&strategyFlags.density, "density", "balanced", "content density (compact|balanced|spacious)")
	strategyCmd.Flags().StringSliceVar(&strategyFlags.ocrTypes, "ocr-types", nil, "OCR text types to request")
	strategyCmd.Flags().StringVar(&strategyFlags.document, "document", "", "OCR document profile (receipt|invoice|businessCard|form|general)")
}

func parseComplexity(raw string) analysis.ComplexityTier {
	var tier analysis.ComplexityTier
	_ = tier.UnmarshalText([]byte(raw))
	return tier
}

func platformForDevice(device capability.DeviceType) capability.Platform {
	switch device {
	case capability.DevicePhone, capability.DevicePad:
		return capability.PlatformIOS
	case capability.DeviceDesktop:
		return capability.PlatformMacOS
	case capability.DeviceTV:
		return capability.PlatformTVOS
	case capability.DeviceWatch:
		return capability.PlatformWatchOS
	default:
		return capability.PlatformUnknown
	}
}
