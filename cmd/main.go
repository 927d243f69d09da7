package main

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"tokenchain/ledger"
	"tokenchain/wallet"
)

func main() {
	// Route slog through pterm so library logs match the demo output.
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Token", pterm.FgCyan.ToStyle()),
		putils.LettersFromStringWithStyle("Chain", pterm.FgDarkGray.ToStyle()),
	).Render()

	miner := wallet.NewKeyPair()
	receiver := wallet.NewKeyPair()

	minerAddr, err := miner.Address()
	if err != nil {
		logger.Error("failed to derive miner address", "error", err)
		os.Exit(1)
	}
	receiverAddr, err := receiver.Address()
	if err != nil {
		logger.Error("failed to derive receiver address", "error", err)
		os.Exit(1)
	}

	spinner, _ := pterm.DefaultSpinner.Start("mining genesis block")
	node := ledger.New(minerAddr, ledger.WithLogger(logger))
	spinner.Success("genesis block mined")

	transfers := []float64{0.5, 1.0}
	for _, amount := range transfers {
		tx := ledger.NewTransfer(minerAddr, receiverAddr, amount)
		if err := tx.Sign(miner.Private); err != nil {
			logger.Error("failed to sign transaction", "error", err)
			os.Exit(1)
		}
		if err := node.SubmitTransaction(tx); err != nil {
			logger.Error("transaction rejected", "error", err)
			os.Exit(1)
		}
		pterm.Info.Printfln("submitted transfer of %g to %s", amount, receiverAddr)

		spinner, _ := pterm.DefaultSpinner.Start("mining block")
		block := node.MineBlock()
		spinner.Success(pterm.Sprintf("mined block %d with nonce %d", block.Num, block.Nonce))
	}

	printChain(node)
	printBalances(node, map[string]ledger.Address{
		"miner":    minerAddr,
		"receiver": receiverAddr,
	})

	if err := node.ValidateChain(); err != nil {
		logger.Error("chain validation failed", "error", err)
		os.Exit(1)
	}
	pterm.Success.Printfln("validated chain of %d blocks", node.Height())
}
