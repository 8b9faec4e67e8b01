package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:   "kuber-web",
		Short: "Kuber Biotech bilingual website",
		Long: `kuber-web serves the Kuber Biotech website in English and Marathi,
including the product catalog and the admin dashboard, on top of the
company's REST backend.`,
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newCatalogCmd())

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
