package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/accountbook/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-b string   storage backend: sqlite, postgres, s3, memory
//	-f string   SQLite database file
//	-d string   PostgreSQL DSN
//	-n string   storage namespace
//	-l string   message locale: en, ru
//	-t int      storage timeout (in seconds)
//
// Unknown arguments are filtered out first, so -c and friends do not clash.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-b", "-f", "-d", "-n", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (sqlite, postgres, s3, memory)")
	fs.StringVar(&cfg.SQLitePath, "f", cfg.SQLitePath, "sqlite database file")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "postgres DSN")
	fs.StringVar(&cfg.StorageNamespace, "n", cfg.StorageNamespace, "storage key namespace")
	fs.StringVar(&cfg.Locale, "l", cfg.Locale, "message locale (en, ru)")
	timeout := fs.Int("t", int(cfg.StorageTimeout.Seconds()), "storage timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.StorageTimeout = time.Duration(*timeout) * time.Second
}
