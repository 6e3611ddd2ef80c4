package report

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/syncparse/pkg/types"
)

// Column widths of the two-column layout.
const (
	leftWidth  = 35
	rightWidth = 20
)

const noneFound = "none found"

// center pads s with fill to width. An odd margin puts the extra fill
// character on the left when width is odd and on the right when it is even.
func center(s string, width int, fill string) string {
	margin := width - lipgloss.Width(s)
	if margin <= 0 {
		return s
	}
	left := margin/2 + (margin & width & 1)
	return strings.Repeat(fill, left) + s + strings.Repeat(fill, margin-left)
}

// header centers the column titles in runs of '='.
func header(left, right string) string {
	return center(left, leftWidth, "=") + " " + center(right, rightWidth, "=")
}

// title centers a single column title in runs of '='.
func title(s string) string {
	return center(s, leftWidth, "=")
}

// pair pads left with ':' on the right and right with ':' on the left.
// Values wider than their column are written unpadded.
func pair(left, right string) string {
	return lipgloss.PlaceHorizontal(leftWidth, lipgloss.Left, left, lipgloss.WithWhitespaceChars(":")) +
		" " + lipgloss.PlaceHorizontal(rightWidth, lipgloss.Right, right, lipgloss.WithWhitespaceChars(":"))
}

func (c *Context) timestamp(t time.Time) string {
	return t.In(c.loc).Format(types.TimeLayout)
}

// WriteText writes one section per result in the order given.
func WriteText(c *Context, results []types.ScanResult) error {
	for _, r := range results {
		writeSection(c, r)
	}
	return c.Err()
}

func writeSection(c *Context, r types.ScanResult) {
	c.Println(LevelHigh, "Database: "+r.Path)
	c.Println(LevelLow, "Scan ID: "+r.ID)
	c.Println(LevelHigh, "")
	if r.Err != nil {
		c.Println(LevelHigh, "Error: "+r.Err.Error())
		c.Println(LevelHigh, "")
		return
	}
	a := r.Artifacts

	c.Println(LevelHigh, header("Email Account", "Time added"))
	c.Println(LevelHigh, "")
	if len(a.Accounts) == 0 {
		c.Println(LevelHigh, noneFound)
	}
	for _, acct := range a.Accounts {
		c.Println(LevelHigh, pair(acct.Email, c.timestamp(acct.CreatedAt)))
	}
	c.Println(LevelHigh, "")

	c.Println(LevelHigh, header("Full Name", "DOB (DDYYYY)"))
	c.Println(LevelHigh, "")
	if name, dob, ok := a.FullInfo(); ok {
		c.Println(LevelHigh, pair(name, dob))
	} else {
		c.Println(LevelHigh, "Full name and date of birth not available")
	}
	c.Println(LevelHigh, "")

	c.Println(LevelHigh, header("Computer Name", "Time added"))
	c.Println(LevelHigh, "")
	for _, m := range a.Machines {
		c.Println(LevelHigh, pair(m.Name, c.timestamp(m.AddedAt)))
	}
	c.Printf(LevelHigh, "Total computers: %d", len(a.Machines))
	c.Println(LevelHigh, "")

	writeList(c, "Recovery Email", a.RecoveryEmails, false)

	c.Println(LevelHigh, title("Recovery Phone"))
	c.Println(LevelHigh, "")
	if a.RecoveryPhone == "" {
		c.Println(LevelHigh, noneFound)
	} else {
		c.Println(LevelHigh, a.RecoveryPhone)
	}
	c.Println(LevelHigh, "")

	writeList(c, "Extensions", a.Extensions, true)
	writeList(c, "Synced Sites", a.AllSites(), true)

	if a.Encrypted {
		c.Println(LevelHigh, "Sync store is encrypted: encrypted entries were not decoded")
		c.Println(LevelHigh, "")
	}
}

// writeList writes a titled list, or "none found" when it is empty.
func writeList(c *Context, name string, items []string, count bool) {
	c.Println(LevelHigh, title(name))
	c.Println(LevelHigh, "")
	if len(items) == 0 {
		c.Println(LevelHigh, noneFound)
		c.Println(LevelHigh, "")
		return
	}
	for _, item := range items {
		c.Println(LevelHigh, item)
	}
	if count {
		c.Printf(LevelHigh, "Total: %d", len(items))
	}
	c.Println(LevelHigh, "")
}
