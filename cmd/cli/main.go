package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/DuckMart/marketplace-engine/internal/config"
	"github.com/DuckMart/marketplace-engine/internal/config/di"
	"github.com/DuckMart/marketplace-engine/internal/messenger"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var container *di.Container

func main() {
	config.Init("cli")

	var err error
	container, err = di.NewContainer()
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to build container")
	}

	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:   "actions",
				Usage:  "Show recent marketplace actions for a token or seller",
				Action: tokenActions,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "contract", Value: "", Usage: "Asset contract address"},
					&cli.StringFlag{Name: "tokenId", Value: "", Usage: "Token id"},
					&cli.StringFlag{Name: "seller", Value: "", Usage: "Seller address"},
					&cli.IntFlag{Name: "size", Value: 20, Usage: "Number of actions"},
				},
			},
			{
				Name:   "listings",
				Usage:  "Show active listings for a contract or seller",
				Action: listings,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "contract", Value: "", Usage: "Asset contract address"},
					&cli.StringFlag{Name: "seller", Value: "", Usage: "Seller address"},
					&cli.IntFlag{Name: "size", Value: 20, Usage: "Number of listings"},
				},
			},
			{
				Name:   "mappings",
				Usage:  "Install elastic mappings",
				Action: installMappings,
			},
			{
				Name:   "queue",
				Usage:  "Show the action queue size",
				Action: queueSize,
			},
		},
	}

	err = app.Run(os.Args)
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to start CLI")
	}
}

func tokenActions(c *cli.Context) error {
	if seller := c.String("seller"); seller != "" {
		actions, err := container.GetActionRepo().GetActionsForSeller(seller, c.Int("size"))
		if err != nil {
			return err
		}

		return printJson(actions)
	}

	tokenId, err := strconv.ParseUint(c.String("tokenId"), 10, 64)
	if err != nil {
		return err
	}

	actions, err := container.GetActionRepo().GetActionsForToken(c.String("contract"), tokenId, c.Int("size"))
	if err != nil {
		return err
	}

	return printJson(actions)
}

func listings(c *cli.Context) error {
	if seller := c.String("seller"); seller != "" {
		results, err := container.GetListingRepo().GetListingsForSeller(seller, c.Int("size"), 0)
		if err != nil {
			return err
		}

		return printJson(results)
	}

	results, err := container.GetListingRepo().GetListingsForContract(c.String("contract"), c.Int("size"), 0)
	if err != nil {
		return err
	}

	return printJson(results)
}

func installMappings(c *cli.Context) error {
	container.GetElastic().InstallMappings()
	return nil
}

func queueSize(c *cli.Context) error {
	size, err := container.GetMessenger().GetQueueSize(messenger.ActionPersist)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d messages\n", messenger.ActionPersist, *size)

	return nil
}

func printJson(el interface{}) error {
	elJson, err := json.MarshalIndent(el, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(elJson))

	return nil
}
