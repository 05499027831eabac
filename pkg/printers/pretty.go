// Package printers renders collections and printer state for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/collection"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Breadcrumb prints the root→active path of a collection.
func (pp *PrettyPrint) Breadcrumb(path []collection.Collection) {
	if len(path) == 0 {
		return
	}
	faint := color.New(color.Faint)
	bold := color.New(color.Bold)

	names := make([]string, 0, len(path))
	for _, c := range path[:len(path)-1] {
		names = append(names, c.Name)
	}
	if len(names) > 0 {
		_, _ = faint.Print(strings.Join(names, " › ") + " › ")
	}
	_, _ = bold.Println(path[len(path)-1].Name)
}

// Collections renders a table of collections.
func (pp *PrettyPrint) Collections(all ...collection.Collection) {
	if len(all) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 40
	if pp.ShowID {
		table.AddRow("ID", "NAME", "CATEGORY", "MODELS", "TAGS")
	} else {
		table.AddRow("NAME", "CATEGORY", "MODELS", "TAGS")
	}
	for _, c := range all {
		cover := ""
		if c.CoverImage != "" {
			cover = "★ "
		}
		if pp.ShowID {
			table.AddRow(c.ID, cover+c.Name, c.Category, len(c.ModelIDs), strings.Join(c.Tags, ", "))
		} else {
			table.AddRow(cover+c.Name, c.Category, len(c.ModelIDs), strings.Join(c.Tags, ", "))
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// PrinterStatus renders one status poll.
func (pp *PrettyPrint) PrinterStatus(s api.PrinterStatus) {
	state := color.New(color.Bold)
	faint := color.New(color.Faint)

	_, _ = state.Printf("%s", s.State)
	if s.JobName != "" {
		_, _ = faint.Printf("  %s", s.JobName)
	}
	fmt.Printf("  %.0f%%  nozzle %.0f°  bed %.0f°\n", s.Progress, s.NozzleTemp, s.BedTemp)
}

// Spools renders the filament inventory.
func (pp *PrettyPrint) Spools(spools ...api.Spool) {
	if len(spools) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	table := uitable.New()
	table.AddRow("NAME", "MATERIAL", "REMAINING", "PRICE")
	for _, s := range spools {
		table.AddRow(s.Name, s.Material, fmt.Sprintf("%.0fg", s.RemainingWeight), fmt.Sprintf("%.2f", s.Price))
	}
	fmt.Println(table)
	fmt.Println("")
}
