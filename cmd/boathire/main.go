package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"BoatHire/internal/config"
	"BoatHire/internal/console"
	"BoatHire/internal/ledger"
	"BoatHire/internal/recorder"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfgPath := "configs/boathire.yaml"
	if v := os.Getenv("BOATHIRE_CONFIG"); v != "" {
		cfgPath = v
	}
	var sqlitePath string

	flagSet := pflag.NewFlagSet("boathire", pflag.ContinueOnError)
	flagSet.StringVar(&cfgPath, "config", cfgPath, "path to YAML config file")
	flagSet.StringVar(&sqlitePath, "sqlite", "", "journal hires to this SQLite database (overrides config)")
	flagSet.BoolP("help", "h", false, "show help")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		log.Fatalf("[FATAL] parse flags: %v", err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		fmt.Fprintf(os.Stdout, "Usage: boathire [flags]\n\n%s", flagSet.FlagUsages())
		return
	}

	// Load config
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if sqlitePath != "" {
		cfg.Database.SQLitePath = sqlitePath
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}
	defer rec.Close()

	rules := cfg.Rules()
	l := ledger.New(rules)

	session := console.NewSession(l, rec, os.Stdin, os.Stdout, os.Stderr)
	if err := session.Run(); err != nil {
		log.Printf("[ERROR] session: %v", err)
	}
}
