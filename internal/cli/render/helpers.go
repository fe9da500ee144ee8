package render

import (
	"fmt"
	"math/big"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	labelStyle   = color.New(color.Faint)
	addressStyle = color.New(color.FgGreen, color.Bold)
	headerStyle  = color.New(color.Bold, color.FgHiWhite)
	warnStyle    = color.New(color.FgYellow)
	errorStyle   = color.New(color.FgRed)
	successStyle = color.New(color.FgGreen)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return warnStyle.Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	return errorStyle.Sprintf("❌ %s", message)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return successStyle.Sprintf("✅ %s", message)
}

// formatWei renders a wei amount followed by its gwei value when that is a whole number
func formatWei(wei *big.Int) string {
	if wei == nil {
		return "0 wei"
	}
	gwei := big.NewInt(1_000_000_000)
	if wei.Sign() > 0 && new(big.Int).Mod(wei, gwei).Sign() == 0 {
		return fmt.Sprintf("%s wei (%s gwei)", wei, new(big.Int).Div(wei, gwei))
	}
	return wei.String() + " wei"
}

// newTable returns a borderless go-pretty table
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Box = table.BoxStyle{
		PaddingRight:     "   ",
		MiddleHorizontal: "─",
		MiddleSeparator:  "─",
	}
	t.Style().Format.Header = text.FormatDefault
	return t
}

// kvTable renders label/value pairs aligned in two columns
func kvTable(rows [][2]string) string {
	t := newTable()
	for _, row := range rows {
		t.AppendRow(table.Row{labelStyle.Sprint(row[0] + ":"), row[1]})
	}
	return t.Render()
}
