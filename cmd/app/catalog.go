package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/kuberbiotech/kuber-web/internal/config"
	"github.com/kuberbiotech/kuber-web/internal/content"
	"github.com/kuberbiotech/kuber-web/internal/gateway"
	"github.com/kuberbiotech/kuber-web/internal/language"
	"github.com/kuberbiotech/kuber-web/internal/product"
)

func newCatalogCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Fetch the product catalog and print it by category",
		Example: `  kuber-web catalog
  kuber-web catalog --lang mr`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, ok := language.Parse(lang)
			if !ok {
				return errors.Errorf("unsupported language %q", lang)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			repo := product.NewGatewayRepository(gateway.New(cfg.APIURL, nil), cfg.CatalogLimit)
			catalog := product.NewService(repo).Load(ctx)
			tree := content.Resolve(l)
			out := cmd.OutOrStdout()
			if catalog.State == product.StateFailed {
				return errors.New(tree.Message(catalog.ErrorKey))
			}

			for _, cat := range product.AllowedCategories {
				label := tree.Products.GranuleProducts
				if cat == product.Liquid {
					label = tree.Products.LiquidProducts
				}
				bucket := catalog.Bucket(cat)
				fmt.Fprintf(out, "%s (%d)\n", label, len(bucket))
				for _, card := range product.BuildCards(bucket, l, cat, tree.Products.DefaultName) {
					fmt.Fprintf(out, "  %-24s %s  images=%d\n", card.ID, card.Name, len(card.Images))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", string(language.Default), "language: en or mr")
	return cmd
}
