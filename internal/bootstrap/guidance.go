package bootstrap

import (
	"fmt"
	"strings"

	"github.com/raphi011/postgen/internal/output"
)

// ownerPlaceholder stands in for an unknown GitHub account.
const ownerPlaceholder = "<github-username>"

var rule = strings.Repeat("=", 60)

// Guidance holds the values printed in the next-steps block.
// Owner and Project are used verbatim.
type Guidance struct {
	Owner          string
	Project        string
	PackageManager string
}

// RemoteURL is the SSH URL suggested for "git remote add origin".
func (g Guidance) RemoteURL() string {
	owner := g.Owner
	if owner == "" {
		owner = ownerPlaceholder
	}
	return fmt.Sprintf("git@github.com:%s/%s.git", owner, g.Project)
}

// RemoteCommand is the full "git remote add" line of the guidance block.
func (g Guidance) RemoteCommand() string {
	return "git remote add origin " + g.RemoteURL()
}

// PrintGuidance writes the completion banner and next-steps block.
func PrintGuidance(p *output.Printer, g Guidance) {
	pm := g.PackageManager

	p.Println(rule)
	p.Heading("✨ Project setup complete!")
	p.Println(rule)
	p.Println()
	p.Println("📍 Next steps:")
	p.Println()
	p.Println("   1. Review the generated files")
	p.Println("   2. Update README.md with your project details")
	p.Println("   3. Create a GitHub repository:")
	p.Printf("      %s\n", g.RemoteCommand())
	p.Println("      git push -u origin main")
	p.Println()
	p.Println("   4. Configure GitHub secrets for CI/CD:")
	p.Println("      - PYPI_API_TOKEN (required for releases)")
	p.Println("      - CODECOV_TOKEN (optional for coverage)")
	p.Println()
	p.Println("   5. Start developing!")
	p.Printf("      %-27s# Run tests\n", pm+" run pytest")
	p.Printf("      %-27s# Lint code\n", pm+" run ruff check .")
	p.Printf("      cd docs && %s run sphinx-build -b html . _build/html  # Build docs\n", pm)
	p.Println()
	p.Println("📖 See .github/copilot-instructions.md for development guide")
	p.Println()
}
