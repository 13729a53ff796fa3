package handlers

import (
	"fmt"
	"strings"

	"github.com/roleready/roleready/internal/wizard"
)

// Catalog prints the template catalog, the suggested skills and the
// popular roles offered by the wizard.
func Catalog() {
	fmt.Println("Templates")
	fmt.Println("---------")
	for _, t := range wizard.Templates {
		fmt.Printf("  %s %-9s %-9s %s\n", t.Icon, t.ID, t.Name, t.Description)
	}
	fmt.Println()

	fmt.Println("Suggested Skills")
	fmt.Println("----------------")
	fmt.Printf("  %s\n", strings.Join(wizard.SuggestedSkills, ", "))
	fmt.Println()

	fmt.Println("Popular Roles")
	fmt.Println("-------------")
	for _, r := range wizard.PopularRoles {
		fmt.Printf("  - %s\n", r)
	}
	fmt.Println()
}
