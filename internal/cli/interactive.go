package cli

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-adaptive/pkg/analysis"
	"github.com/goliatone/go-adaptive/pkg/capability"
	"github.com/goliatone/go-adaptive/pkg/presenter"
	"github.com/goliatone/go-adaptive/pkg/report"
	"github.com/goliatone/go-adaptive/pkg/strategy"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Walk through a presentation decision with prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		answers := struct {
			Device      string
			Width       string
			Items       string
			Complexity  string
			Interaction string
			Density     string
		}{}

		questions := []*survey.Question{
			{
				Name: "device",
				Prompt: &survey.Select{
					Message: "Device type:",
					Options: []string{"phone", "pad", "desktop", "tv", "watch"},
					Default: "phone",
				},
			},
			{
				Name:     "width",
				Prompt:   &survey.Input{Message: "Available width (points):", Default: "375"},
				Validate: validateNumber,
			},
			{
				Name:     "items",
				Prompt:   &survey.Input{Message: "Item count:", Default: "10"},
				Validate: validateNumber,
			},
			{
				Name: "complexity",
				Prompt: &survey.Select{
					Message: "Content complexity:",
					Options: []string{"simple", "moderate", "complex", "veryComplex"},
					Default: "simple",
				},
			},
			{
				Name: "interaction",
				Prompt: &survey.Select{
					Message: "Interaction style:",
					Options: []string{"static", "touch", "pointer", "remote"},
					Default: "touch",
				},
			},
			{
				Name: "density",
				Prompt: &survey.Select{
					Message: "Content density:",
					Options: []string{"compact", "balanced", "spacious"},
					Default: "balanced",
				},
			},
		}

		if err := survey.Ask(questions, &answers); err != nil {
			return err
		}

		device := capability.DeviceType(answers.Device)
		width, _ := strconv.ParseFloat(answers.Width, 64)
		items, _ := strconv.Atoi(answers.Items)
		complexity := parseComplexity(answers.Complexity)

		snapshot := capability.Defaults(platformForDevice(device))
		snapshot.Device = device

		shape := analysis.DataAnalysis{Complexity: complexity}
		pres, err := presenter.New(
			presenter.WithProvider(capability.NewStaticSnapshot(snapshot)),
		).Present(cmd.Context(), presenter.Request{
			Analysis:       &shape,
			Collection:     make([]struct{}, items),
			AvailableWidth: width,
			Interaction:    strategy.InteractionStyle(answers.Interaction),
			Density:        strategy.ContentDensity(answers.Density),
		})
		if err != nil {
			return err
		}

		renderer, err := report.New()
		if err != nil {
			return err
		}
		text, err := renderer.Render(pres)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func validateNumber(ans any) error {
	raw, ok := ans.(string)
	if !ok {
		return fmt.Errorf("expected a number")
	}
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return fmt.Errorf("%q is not a number", raw)
	}
	return nil
}
