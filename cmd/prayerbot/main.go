package main

import (
	"log"

	"github.com/m3rciful/prayerbot/app"
	corecmd "github.com/m3rciful/prayerbot/core/cmd"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			cfg, err := app.LoadConfig(path)
			if err != nil {
				return nil, err
			}
			return cfg, nil
		},
		Bootstrap: func(cfg corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
			appCfg, ok := cfg.(*app.Config)
			if !ok {
				log.Fatalf("unexpected config type %T", cfg)
			}
			a, err := app.Bootstrap(appCfg)
			if err != nil {
				return nil, err
			}
			return a, nil
		},
	})
	if err != nil {
		log.Fatalf("prayerbot: %v", err)
	}
}
