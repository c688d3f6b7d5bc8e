package main

import (
	"log"

	"github.com/m3rciful/phonebot/core/bootstrap"
	corecmd "github.com/m3rciful/phonebot/core/cmd"
	"github.com/m3rciful/phonebot/internal/app"
	"github.com/m3rciful/phonebot/internal/config"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			return config.Load(path)
		},
		Bootstrap: func(c corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
			cfg := c.(*config.Config)
			infra, err := bootstrap.Run(bootstrap.Options{
				Config:   cfg.CoreConfig(),
				Database: cfg.Database,
			})
			if err != nil {
				return nil, err
			}
			a, err := app.New(cfg, infra)
			if err != nil {
				_ = infra.Close()
				return nil, err
			}
			return a, nil
		},
	})
	if err != nil {
		log.Fatal(err)
	}
}
