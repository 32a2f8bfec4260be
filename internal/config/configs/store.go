package configs

import "strings"

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Store selects the ledger store implementation. "memory" keeps the ledger
// in process and loses it on restart; "postgres" uses the PSQL_ section.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
}

// DriverName normalises Driver. Unknown drivers are returned as given so
// main can reject them.
func (c Store) DriverName() string {
	return strings.ToLower(strings.TrimSpace(c.Driver))
}
