package ui

import (
	"fmt"
	"strings"

	"makeabet/internal/scaffold"
)

// SuccessMessage is printed after a scaffold finishes.
func SuccessMessage(s Styles, o scaffold.Options) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.Success.Render("Success!") + "\n")
	fmt.Fprintf(&b, "Scaffold created at %s.\n\n", s.Accent.Render(o.ProjectName))
	b.WriteString("Next steps:\n")
	for _, step := range scaffold.NextSteps(o) {
		b.WriteString("  " + step + "\n")
	}
	b.WriteString("\n")
	state := s.Success.Render("enabled")
	if !o.IncludeMerchantModule {
		state = s.Warning.Render("skipped")
	}
	fmt.Fprintf(&b, "Merchant portal module %s.\n", state)
	b.WriteString("Ready to build the MakeABet demo and deploy to Railway!\n")
	return b.String()
}
