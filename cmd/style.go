package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/camel-cards/domain/hand"
	"github.com/luca-patrignani/camel-cards/domain/ranking"
)

func renderStandings(standings []ranking.Standing, rule hand.Rule) (string, error) {
	data := pterm.TableData{
		{"Rank", "Hand", "Category", "Tiebreak", "Bid", "Winnings"},
	}
	total := 0
	for _, s := range standings {
		data = append(data, []string{
			strconv.Itoa(s.Position),
			s.Hand.Pretty(rule),
			s.Hand.Category(rule).String(),
			strconv.FormatUint(uint64(s.Hand.Tiebreak(rule)), 10),
			strconv.Itoa(s.Hand.Bid()),
			strconv.Itoa(s.Winnings),
		})
		total += s.Winnings
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(2).WithTitle(pterm.LightYellow("|" + rule.String() + " rule|")).WithTitleTopCenter()
	return pbox.Sprint(table + "\nTotal: " + strconv.Itoa(total)), nil
}
