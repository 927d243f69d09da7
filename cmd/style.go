package main

import (
	"github.com/pterm/pterm"

	"tokenchain/ledger"
)

func printChain(node *ledger.Node) {
	rows := pterm.TableData{{"Block", "Nonce", "Transactions", "Hash"}}
	for i := 0; i < node.Height(); i++ {
		b, err := node.BlockAt(i)
		if err != nil {
			continue
		}
		rows = append(rows, []string{
			pterm.Sprintf("%d", b.Num),
			pterm.Sprintf("%d", b.Nonce),
			pterm.Sprintf("%d", len(b.Transactions)),
			shortHash(b.Hash),
		})
	}
	pterm.DefaultSection.Println("Chain")
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func printBalances(node *ledger.Node, accounts map[string]ledger.Address) {
	rows := pterm.TableData{{"Account", "Address", "Balance"}}
	for name, addr := range accounts {
		rows = append(rows, []string{
			name,
			addr.String(),
			pterm.Sprintf("%g", node.Balance(addr)),
		})
	}
	pterm.DefaultSection.Println("Balances")
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func shortHash(hash string) string {
	if len(hash) <= 16 {
		return hash
	}
	return hash[:8] + ".." + hash[len(hash)-8:]
}
