package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/cli/types"
)

const (
	cardNameWidth   = 42
	cardVendorWidth = 18
)

// PrintCards renders recommended items as an aligned list. Sponsored
// items are marked so organic and promoted results stay visually
// distinct, as in the app.
func PrintCards(cards []types.Card) {
	if len(cards) == 0 {
		return
	}

	fmt.Println(Styles.Dim.Render(strings.Repeat("─", cardNameWidth+cardVendorWidth+12)))
	for _, card := range cards {
		name := runewidth.Truncate(card.Name, cardNameWidth, "…")
		line := fmt.Sprintf("  %s %s %s",
			runewidth.FillRight(name, cardNameWidth),
			runewidth.FillRight(card.VendorName, cardVendorWidth),
			FormatPrice(card.Price),
		)
		if card.Sponsored {
			line += "  " + Styles.Sponsored.Render("[Ad]")
		}
		fmt.Println(line)
	}
	fmt.Println(Styles.Dim.Render(strings.Repeat("─", cardNameWidth+cardVendorWidth+12)))
}

// PrintVendors renders the vendor directory as an aligned list.
func PrintVendors(vendors []types.Vendor) {
	for _, v := range vendors {
		fmt.Printf("  %s %s  %s\n",
			Styles.Bold.Render(runewidth.FillRight(v.Name, cardVendorWidth)),
			Styles.Dim.Render(fmt.Sprintf("★ %-4s %s", v.Rating, v.DeliveryTime)),
			strings.Join(v.Categories, ", "),
		)
		if v.Location != "" {
			fmt.Printf("  %s\n", Styles.Dim.Render(v.Location))
		}
	}
}

// FormatPrice renders a price with naira sign and thousands separators,
// matching the app's display.
func FormatPrice(price int) string {
	digits := strconv.Itoa(price)

	var b strings.Builder
	b.WriteString("₦")
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}
